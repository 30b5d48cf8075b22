package parser

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
)

var (
	// ErrUnsupportedFormat indicates a legacy BIFF (.xls) workbook.
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	// ErrEncrypted indicates a password protected workbook opened without a password.
	ErrEncrypted = errors.New("workbook is encrypted")
)

// Container is the on-disk packaging of a workbook.
type Container int

const (
	// ContainerUnknown is anything that is neither a zip nor an OLE file.
	ContainerUnknown Container = iota
	// ContainerOOXML is a zip package (.xlsx).
	ContainerOOXML
	// ContainerLegacy is an OLE compound file holding a BIFF workbook (.xls).
	ContainerLegacy
	// ContainerEncrypted is an OLE compound file wrapping an encrypted .xlsx.
	ContainerEncrypted
)

func (c Container) String() string {
	switch c {
	case ContainerOOXML:
		return "ooxml"
	case ContainerLegacy:
		return "legacy"
	case ContainerEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectContainer sniffs the file header and, for OLE compound files, the
// stream directory.
func DetectContainer(path string) (Container, error) {
	file, err := os.Open(path)
	if err != nil {
		return ContainerUnknown, err
	}
	defer file.Close()

	head := make([]byte, len(oleMagic))
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return ContainerUnknown, err
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return ContainerOOXML, nil
	case bytes.Equal(head, oleMagic):
		return oleContainer(file)
	default:
		return ContainerUnknown, nil
	}
}

func oleContainer(r io.ReaderAt) (Container, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return ContainerUnknown, err
	}
	legacy := false
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptedPackage", "EncryptionInfo":
			return ContainerEncrypted, nil
		case "Workbook", "Book":
			legacy = true
		}
	}
	if legacy {
		return ContainerLegacy, nil
	}
	return ContainerUnknown, nil
}
