package staleness_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sectx/internal/core/ports/mocks"
	"go.trai.ch/sectx/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

func TestChecker_Stale(t *testing.T) {
	ctrl := gomock.NewController(t)
	fp := mocks.NewMockFingerprinter(ctrl)
	fp.EXPECT().Fingerprint("/a").Return("1-10", nil).AnyTimes()
	fp.EXPECT().Fingerprint("/b").Return("2-20", nil).AnyTimes()
	fp.EXPECT().Fingerprint("/gone").Return("", errors.New("no such file")).AnyTimes()

	c := staleness.NewChecker(fp)

	tests := []struct {
		name    string
		current []string
		stored  map[string]string
		want    []string
	}{
		{
			name:    "unchanged",
			current: []string{"/a", "/b"},
			stored:  map[string]string{"/a": "1-10", "/b": "2-20"},
			want:    nil,
		},
		{
			name:    "changed fingerprint",
			current: []string{"/a", "/b"},
			stored:  map[string]string{"/a": "1-10", "/b": "2-19"},
			want:    []string{"/b"},
		},
		{
			name:    "new live file absent from stored map",
			current: []string{"/a", "/b"},
			stored:  map[string]string{"/a": "1-10"},
			want:    []string{"/b"},
		},
		{
			name:    "file removed since capture",
			current: []string{"/gone"},
			stored:  map[string]string{"/gone": "5-5"},
			want:    []string{"/gone"},
		},
		{
			name:    "stored-only files are not checked",
			current: []string{"/a"},
			stored:  map[string]string{"/a": "1-10", "/gone": "5-5"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Stale(tt.current, tt.stored))
		})
	}
}

func TestChecker_SubsetStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	fp := mocks.NewMockFingerprinter(ctrl)
	fp.EXPECT().Fingerprint("/a").Return("1-10", nil).AnyTimes()
	fp.EXPECT().Fingerprint("/b").Return("2-21", nil).AnyTimes()
	fp.EXPECT().Fingerprint("/gone").Return("", errors.New("no such file")).AnyTimes()

	c := staleness.NewChecker(fp)

	assert.Empty(t, c.SubsetStale(map[string]string{"/a": "1-10"}))
	assert.Empty(t, c.SubsetStale(nil))
	assert.Equal(t,
		[]string{"/b", "/gone"},
		c.SubsetStale(map[string]string{"/a": "1-10", "/b": "2-20", "/gone": "9-9"}),
	)
}

func TestChecker_Fingerprints(t *testing.T) {
	ctrl := gomock.NewController(t)
	fp := mocks.NewMockFingerprinter(ctrl)
	fp.EXPECT().Fingerprint("/a").Return("1-10", nil)
	fp.EXPECT().Fingerprint("/gone").Return("", errors.New("no such file"))

	c := staleness.NewChecker(fp)
	assert.Equal(t, map[string]string{"/a": "1-10"}, c.Fingerprints([]string{"/a", "/gone"}))
}
