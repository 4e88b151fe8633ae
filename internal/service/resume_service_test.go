package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Sitalakshmib/AceIt-sub001/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestUploadResumeRejectsOversizedFile(t *testing.T) {
	svc := NewResumeService(nil, nil)

	_, err := svc.UploadResume(context.Background(), 1, "resume.pdf",
		strings.NewReader(""), util.ResumeMaxSizeBytes+1, util.MimePDF)
	assert.ErrorIs(t, err, util.ErrFileTooLarge)
}

func TestUploadResumeRejectsUnsupportedExtension(t *testing.T) {
	svc := NewResumeService(nil, nil)

	for _, name := range []string{"resume.exe", "resume", "resume.pdf.sh", "RESUME.TXT"} {
		_, err := svc.UploadResume(context.Background(), 1, name,
			strings.NewReader("x"), 1, util.MimeOctetStream)
		assert.ErrorIs(t, err, util.ErrUnsupportedFile, name)
	}
}
