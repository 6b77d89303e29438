package output_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bytelit/pkg/output"
)

var _ = Describe("WriteFile", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should write the bytes verbatim", func() {
		path := filepath.Join(dir, "a.out")
		Expect(output.WriteFile(path, []byte{0x41, 0x00, 0xff})).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte{0x41, 0x00, 0xff}))

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(output.FileMode))
	})

	It("should write an empty file for empty output", func() {
		path := filepath.Join(dir, "empty.bin")
		Expect(output.WriteFile(path, nil)).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeZero())
	})

	It("should replace an existing file", func() {
		path := filepath.Join(dir, "a.out")
		Expect(os.WriteFile(path, []byte("old contents"), 0644)).To(Succeed())

		Expect(output.WriteFile(path, []byte{1, 2})).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 2}))
	})

	It("should create missing parent directories", func() {
		path := filepath.Join(dir, "build", "out", "a.out")
		Expect(output.WriteFile(path, []byte{7})).To(Succeed())
		Expect(path).To(BeAnExistingFile())
	})

	It("should leave no temp files behind", func() {
		path := filepath.Join(dir, "a.out")
		Expect(output.WriteFile(path, []byte{1})).To(Succeed())

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("a.out"))
	})

	It("should reject an empty path", func() {
		Expect(output.WriteFile("", []byte{1})).To(MatchError(output.ErrEmptyPath))
	})

	It("should fail and keep the directory clean when the target is a directory", func() {
		path := filepath.Join(dir, "target")
		Expect(os.Mkdir(path, 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644)).To(Succeed())

		Expect(output.WriteFile(path, []byte{1})).NotTo(Succeed())

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(filepath.Join(path, "keep")).To(BeAnExistingFile())
	})

	It("should satisfy the sink interface through AtomicSink", func() {
		path := filepath.Join(dir, "sink.bin")
		Expect(output.AtomicSink{}.Write(path, []byte{9})).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte{9}))
	})
})
