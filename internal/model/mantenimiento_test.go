package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFecha(t *testing.T) {
	now := time.Date(2023, 6, 28, 17, 45, 3, 0, time.UTC)

	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "empty defaults to today", input: "", expected: "2023-06-28"},
		{name: "plain date passes through", input: "2023-06-27", expected: "2023-06-27"},
		{name: "RFC3339 is truncated to the day", input: "2023-06-28T15:04:05Z", expected: "2023-06-28"},
		{name: "datetime form is truncated", input: "2023-06-01 09:30:00", expected: "2023-06-01"},
		{name: "garbage is rejected", input: "el martes pasado", wantErr: true},
		{name: "slashes are rejected", input: "28/06/2023", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeFecha(tc.input, now)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
