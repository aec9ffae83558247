package cache

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		dbPath string
		store  *Store
	)

	BeforeEach(func() {
		dbPath = filepath.Join(GinkgoT().TempDir(), "cache.db")
		var err error
		store, err = Open(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if store != nil {
			store.Close()
		}
	})

	Describe("Digest", func() {
		It("should be stable for the same input", func() {
			Expect(Digest([]byte("%PDF-1.4"))).To(Equal(Digest([]byte("%PDF-1.4"))))
		})

		It("should differ for different input", func() {
			Expect(Digest([]byte("a"))).NotTo(Equal(Digest([]byte("b"))))
		})

		It("should be hex encoded SHA-256", func() {
			Expect(Digest(nil)).To(Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
		})
	})

	Describe("Key", func() {
		data := []byte("%PDF-1.4")

		It("should separate variants of the same input", func() {
			Expect(Key(data, "dslipak")).NotTo(Equal(Key(data, "ledongthuc")))
			Expect(Key(data, "dslipak")).NotTo(Equal(Digest(data)))
		})

		It("should fall back to the plain digest without a variant", func() {
			Expect(Key(data, "")).To(Equal(Digest(data)))
		})

		It("should not confuse variant and data boundaries", func() {
			Expect(Key([]byte("ab"), "x")).NotTo(Equal(Key([]byte("b"), "xa")))
		})
	})

	Describe("Get", func() {
		var (
			value []byte
			found bool
			err   error
		)

		JustBeforeEach(func() {
			value, found, err = store.Get("key")
		})

		When("the key is missing", func() {
			It("should report a miss", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
				Expect(value).To(BeNil())
			})
		})

		When("the key was stored", func() {
			BeforeEach(func() {
				Expect(store.Put("key", []byte(`[{"dayName":"Montag"}]`+"\n"))).To(Succeed())
			})

			It("should return the stored bytes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(string(value)).To(Equal(`[{"dayName":"Montag"}]` + "\n"))
			})
		})

		When("the key was overwritten", func() {
			BeforeEach(func() {
				Expect(store.Put("key", []byte("old"))).To(Succeed())
				Expect(store.Put("key", []byte("new"))).To(Succeed())
			})

			It("should return the latest value", func() {
				Expect(string(value)).To(Equal("new"))
			})
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			Expect(store.Put("key", []byte("value"))).To(Succeed())
		})

		It("should remove the key", func() {
			Expect(store.Delete("key")).To(Succeed())
			_, found, err := store.Get("key")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("should ignore missing keys", func() {
			Expect(store.Delete("missing")).To(Succeed())
		})
	})

	Describe("Len", func() {
		It("should count stored menus", func() {
			Expect(store.Put("a", []byte("1"))).To(Succeed())
			Expect(store.Put("b", []byte("2"))).To(Succeed())
			Expect(store.Len()).To(Equal(2))
		})
	})

	When("the database is reopened", func() {
		It("should keep stored values", func() {
			Expect(store.Put("key", []byte("value"))).To(Succeed())
			Expect(store.Close()).To(Succeed())

			var err error
			store, err = Open(dbPath)
			Expect(err).NotTo(HaveOccurred())

			value, found, err := store.Get("key")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(string(value)).To(Equal("value"))
		})
	})
})
