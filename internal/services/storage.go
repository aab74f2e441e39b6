package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService spools an uploaded file to disk just long enough for the
// PDF parser to read it. Nothing survives the request: callers remove the
// spooled file once extraction finishes.
type StorageService interface {
	SaveTemp(file *multipart.FileHeader) (string, error)
	Remove(path string) error
	EnsureSpoolDir() error
}

type storageService struct {
	spoolPath string
}

func NewStorageService(spoolPath string) StorageService {
	return &storageService{
		spoolPath: spoolPath,
	}
}

func (s *storageService) EnsureSpoolDir() error {
	if err := os.MkdirAll(s.spoolPath, 0755); err != nil {
		return fmt.Errorf("failed to create spool directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveTemp(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	filePath := filepath.Join(s.spoolPath, fmt.Sprintf("roast_%s%s", uuid.New().String(), ext))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create spool file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to spool file: %w", err)
	}

	return filePath, nil
}

func (s *storageService) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove spool file: %w", err)
	}
	return nil
}
