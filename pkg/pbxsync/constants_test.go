package pbxsync_test

import (
	"testing"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

func TestIsValidBackend(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{pbxsync.BackendSplice, true},
		{pbxsync.BackendRecords, true},
		{"", false},
		{"Splice", false},
		{"pbxproj", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pbxsync.IsValidBackend(tt.name); got != tt.want {
				t.Errorf("IsValidBackend(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestValidBackends_CoversDefault(t *testing.T) {
	found := false
	for _, b := range pbxsync.ValidBackends() {
		if b == pbxsync.DefaultBackend {
			found = true
		}
	}
	if !found {
		t.Errorf("ValidBackends() = %v does not include DefaultBackend %q",
			pbxsync.ValidBackends(), pbxsync.DefaultBackend)
	}
}
