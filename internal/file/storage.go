package file

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

type Storage struct {
	basePath string
	logger   *slog.Logger
}

type StoredFile struct {
	OriginalName string
	StoredPath   string
	Size         int64
	MimeType     string
	Checksum     string
}

func NewStorage(basePath string, logger *slog.Logger) *Storage {
	return &Storage{
		basePath: basePath,
		logger:   logger.With("component", "file-storage"),
	}
}

// StorePatientDocument stores a document uploaded for the patient
// identified by reference
func (fs *Storage) StorePatientDocument(reference string, filename string, reader io.Reader) (*StoredFile, error) {
	return fs.storeFile(filepath.Join("patients", filepath.Base(reference)), filename, reader)
}

func (fs *Storage) storeFile(subdir, filename string, reader io.Reader) (*StoredFile, error) {
	dirPath := filepath.Join(fs.basePath, subdir)

	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory %s", dirPath)
	}

	filename = filepath.Base(filename)

	// Generate unique filename to avoid conflicts
	storedFilename := fs.generateUniqueFilename(filename)
	storedPath := filepath.Join(dirPath, storedFilename)

	file, err := os.Create(storedPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create file %s", storedPath)
	}
	defer file.Close()

	hasher := sha256.New()
	multiWriter := io.MultiWriter(file, hasher)

	size, err := io.Copy(multiWriter, reader)
	if err != nil {
		os.Remove(storedPath)
		return nil, errors.Wrapf(err, "failed to write file %s", storedPath)
	}

	mimeType := fs.detectMimeType(storedPath)

	fs.logger.Debug("stored file",
		"original_name", filename,
		"stored_path", storedPath,
		"size", size,
		"mime_type", mimeType)

	return &StoredFile{
		OriginalName: filename,
		StoredPath:   storedPath,
		Size:         size,
		MimeType:     mimeType,
		Checksum:     fmt.Sprintf("%x", hasher.Sum(nil)),
	}, nil
}

// DeletePatient removes every document stored for a patient
func (fs *Storage) DeletePatient(reference string) error {
	patientPath := filepath.Join(fs.basePath, "patients", filepath.Base(reference))
	if err := os.RemoveAll(patientPath); err != nil {
		return errors.Wrapf(err, "failed to delete patient directory %s", patientPath)
	}

	fs.logger.Info("deleted patient directory", "reference", reference, "path", patientPath)
	return nil
}

func (fs *Storage) generateUniqueFilename(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(original, ext)
	timestamp := time.Now().Unix()

	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	randomSuffix := fmt.Sprintf("%x", randomBytes)

	return fmt.Sprintf("%s_%d_%s%s", base, timestamp, randomSuffix, ext)
}

func (fs *Storage) detectMimeType(filePath string) string {
	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return "application/octet-stream"
	}

	return mtype.String()
}

// Check ensures the base directory exists and is writable
func (fs *Storage) Check() error {
	probe, err := os.CreateTemp(fs.basePath, ".health_check_*")
	if err != nil {
		return errors.Wrapf(err, "base directory %s is not writable", fs.basePath)
	}

	name := probe.Name()
	probe.Close()

	if err := os.Remove(name); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
