package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadMetaValidate(t *testing.T) {
	tests := []struct {
		name    string
		meta    UploadMeta
		wantErr string
	}{
		{
			name: "valid",
			meta: UploadMeta{Name: "report.pdf", Mimetype: "application/pdf", Size: 1024},
		},
		{
			name:    "missing name",
			meta:    UploadMeta{Mimetype: "application/pdf", Size: 1024},
			wantErr: "Filename is required",
		},
		{
			name:    "name too long",
			meta:    UploadMeta{Name: longString(256), Mimetype: "application/pdf", Size: 1024},
			wantErr: "Filename too long",
		},
		{
			name:    "missing mimetype",
			meta:    UploadMeta{Name: "report.pdf", Size: 1024},
			wantErr: "MIME type is required",
		},
		{
			name:    "zero size",
			meta:    UploadMeta{Name: "report.pdf", Mimetype: "application/pdf", Size: 0},
			wantErr: "File size must be positive",
		},
		{
			name:    "negative size",
			meta:    UploadMeta{Name: "report.pdf", Mimetype: "application/pdf", Size: -1},
			wantErr: "File size must be positive",
		},
		{
			name: "exactly at limit",
			meta: UploadMeta{Name: "big.bin", Mimetype: "application/octet-stream", Size: 5 * 1024 * 1024},
		},
		{
			name:    "over limit",
			meta:    UploadMeta{Name: "big.bin", Mimetype: "application/octet-stream", Size: 5*1024*1024 + 1},
			wantErr: "File size cannot exceed 5MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Message)
		})
	}
}
