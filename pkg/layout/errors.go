package layout

import "errors"

// ErrStructure reports a document whose layout does not have the shape the
// conversion relies on. It is fatal for the whole conversion.
var ErrStructure = errors.New("unexpected document structure")
