package cmd

import (
	"testing"
)

func TestValidateOrgID(t *testing.T) {
	tests := []struct {
		name     string
		orgID    string
		expected string
		wantErr  bool
	}{
		{
			name:     "numeric id",
			orgID:    "123456789012",
			expected: "123456789012",
		},
		{
			name:     "surrounding whitespace trimmed",
			orgID:    "  123456789012\n",
			expected: "123456789012",
		},
		{
			name:    "empty",
			orgID:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			orgID:   "   \t\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validateOrgID(tt.orgID)
			if tt.wantErr {
				if err == nil {
					t.Errorf("validateOrgID(%q) expected error, got %q", tt.orgID, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateOrgID(%q) unexpected error: %v", tt.orgID, err)
			}
			if result != tt.expected {
				t.Errorf("validateOrgID(%q) = %q, want %q", tt.orgID, result, tt.expected)
			}
		})
	}
}
