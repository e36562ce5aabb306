package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sectx/internal/core/domain"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Variant
		wantErr bool
	}{
		{in: "files", want: domain.VariantFiles},
		{in: "Summary", want: domain.VariantSummary},
		{in: " files ", want: domain.VariantFiles},
		{in: "", wantErr: true},
		{in: "all", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseVariant(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidVariant.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferenceFromTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want domain.Preference
	}{
		{name: "no tags", tags: nil, want: domain.PreferNone},
		{name: "unrelated tags", tags: []string{"work", "draft"}, want: domain.PreferNone},
		{name: "summary tag", tags: []string{"ctx_summary"}, want: domain.PreferSummary},
		{name: "files tag", tags: []string{"ctx_files"}, want: domain.PreferFiles},
		{name: "both tags prefer summary", tags: []string{"ctx_files", "ctx_summary"}, want: domain.PreferSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PreferenceFromTags(tt.tags, domain.DefaultSummaryTag, domain.DefaultFilesTag)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreference_Candidates(t *testing.T) {
	assert.Equal(t, []domain.Variant{domain.VariantSummary}, domain.PreferSummary.Candidates())
	assert.Equal(t, []domain.Variant{domain.VariantFiles}, domain.PreferFiles.Candidates())
	assert.Equal(t, []domain.Variant{domain.VariantSummary, domain.VariantFiles}, domain.PreferNone.Candidates())
}

func TestVariant_Matches(t *testing.T) {
	assert.True(t, domain.VariantFiles.Matches(domain.VariantAny))
	assert.True(t, domain.VariantFiles.Matches(domain.VariantFiles))
	assert.False(t, domain.VariantFiles.Matches(domain.VariantSummary))
}

func TestFingerprint(t *testing.T) {
	ts := time.Unix(1700000000, 999_000_000)
	assert.Equal(t, "1700000000-42", domain.Fingerprint(ts, 42))
	// Sub-second changes are invisible.
	assert.Equal(t, domain.Fingerprint(ts, 42), domain.Fingerprint(ts.Add(-500*time.Millisecond), 42))
	assert.NotEqual(t, domain.Fingerprint(ts, 42), domain.Fingerprint(ts, 43))
}
