package document

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/edustream/videos-ms-go/internal/model"
	"github.com/edustream/videos-ms-go/internal/port"
)

type documentUploaderSrv struct {
	repo      port.DocumentRepository
	strg      port.Storage
	optimiser port.Optimiser
	genUUID   port.UUIDGen
	container string
}

// compile-time check: *documentUploaderSrv must satisfy port.DocumentUploader
var _ port.DocumentUploader = (*documentUploaderSrv)(nil)

func NewDocumentUploader(repo port.DocumentRepository, strg port.Storage, optimiser port.Optimiser, genUUID port.UUIDGen, container string) port.DocumentUploader {
	return &documentUploaderSrv{repo: repo, strg: strg, optimiser: optimiser, genUUID: genUUID, container: container}
}

// UploadDocument validates, optimises and stores a new PDF, then records it.
// The storage upload happens before the INSERT; an orphaned blob is cheap,
// an orphaned record is not.
func (s *documentUploaderSrv) UploadDocument(ctx context.Context, in port.UploadDocumentInput) (*model.Document, error) {
	data, pageCount, hash, err := preparePDF(s.optimiser, in.File)
	if err != nil {
		return nil, err
	}

	id := s.genUUID()
	fileKey := id.String() + ".pdf"

	if err := s.strg.SaveFile(ctx, s.container, fileKey, bytes.NewReader(data), int64(len(data)), ContentTypePDF); err != nil {
		return nil, fmt.Errorf("failed to upload document %q: %w", fileKey, err)
	}

	doc := &model.Document{
		ID:          id,
		Title:       in.Title,
		Path:        s.container + "/" + fileKey,
		SizeBytes:   int64(len(data)),
		ContentType: ContentTypePDF,
		Sha256:      hash,
		PageCount:   pageCount,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if rmErr := s.strg.RemoveFile(ctx, s.container, fileKey); rmErr != nil {
			log.Printf("failed to clean up document %q after create failure: %v", fileKey, rmErr)
		}
		return nil, err
	}
	return doc, nil
}

// preparePDF reads the whole upload, checks it parses as a PDF, runs the
// optimiser over it and returns the bytes to store with their page count and
// SHA-256. A failed optimisation keeps the original bytes.
func preparePDF(optimiser port.Optimiser, file io.Reader) ([]byte, int, string, error) {
	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, 0, "", fmt.Errorf("error reading PDF data: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, 0, "", fmt.Errorf("document too large (max size: %d bytes)", MaxFileSize)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0, "", fmt.Errorf("not a valid PDF: %w", err)
	}
	pageCount := reader.NumPage()

	data = optimisePDF(optimiser, data)

	sum := sha256.Sum256(data)
	return data, pageCount, hex.EncodeToString(sum[:]), nil
}

// optimisePDF runs the optimiser through temp files. Best effort: any
// failure is logged and the original bytes are returned.
func optimisePDF(optimiser port.Optimiser, data []byte) []byte {
	in, err := os.CreateTemp("", "document_in_*.pdf")
	if err != nil {
		log.Printf("failed to create temp file for PDF optimisation: %v", err)
		return data
	}
	defer removeTemp(in.Name())

	if _, err := in.Write(data); err != nil {
		in.Close()
		log.Printf("failed to write temp file for PDF optimisation: %v", err)
		return data
	}
	in.Close()

	out, err := os.CreateTemp("", "document_out_*.pdf")
	if err != nil {
		log.Printf("failed to create temp file for PDF optimisation: %v", err)
		return data
	}
	out.Close()
	defer removeTemp(out.Name())

	if err := optimiser.OptimisePDF(in.Name(), out.Name()); err != nil {
		log.Printf("PDF optimisation failed, keeping original: %v", err)
		return data
	}

	optimised, err := os.ReadFile(out.Name())
	if err != nil || len(optimised) == 0 {
		log.Printf("failed to read optimised PDF, keeping original: %v", err)
		return data
	}
	return optimised
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove temp file %q: %v", path, err)
	}
}
