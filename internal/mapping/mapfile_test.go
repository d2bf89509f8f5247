package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

func TestParseMapFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expected    []pbxsync.PathMapping
		expectError bool
		errorMsg    string
	}{
		{
			name: "Simple mappings",
			content: `Old/One.swift=New/One.swift
Old/Two.swift=New/Two.swift`,
			expected: []pbxsync.PathMapping{
				{OldPath: "Old/One.swift", NewPath: "New/One.swift"},
				{OldPath: "Old/Two.swift", NewPath: "New/Two.swift"},
			},
		},
		{
			name: "Old paths with spaces",
			content: `My View.swift=Views/MyView.swift
Helpers/String Utils.swift=Helpers/StringUtils.swift`,
			expected: []pbxsync.PathMapping{
				{OldPath: "My View.swift", NewPath: "Views/MyView.swift"},
				{OldPath: "Helpers/String Utils.swift", NewPath: "Helpers/StringUtils.swift"},
			},
		},
		{
			name: "Double quoted sides",
			content: `"My View.swift"="Views/MyView.swift"`,
			expected: []pbxsync.PathMapping{
				{OldPath: "My View.swift", NewPath: "Views/MyView.swift"},
			},
		},
		{
			name: "Single quoted sides",
			content: `'Old Name.swift'=NewName.swift`,
			expected: []pbxsync.PathMapping{
				{OldPath: "Old Name.swift", NewPath: "NewName.swift"},
			},
		},
		{
			name: "Comments and empty lines",
			content: `# Moved during the navigation refactor
Old/Home.swift=Features/Home/Home.swift

# Another move
Old/Detail.swift=Features/Detail/Detail.swift

`,
			expected: []pbxsync.PathMapping{
				{OldPath: "Old/Home.swift", NewPath: "Features/Home/Home.swift"},
				{OldPath: "Old/Detail.swift", NewPath: "Features/Detail/Detail.swift"},
			},
		},
		{
			name: "Whitespace around equals",
			content: `One.swift = A/One.swift
Two.swift= A/Two.swift
Three.swift =A/Three.swift
Four.swift  =  A/Four.swift`,
			expected: []pbxsync.PathMapping{
				{OldPath: "One.swift", NewPath: "A/One.swift"},
				{OldPath: "Two.swift", NewPath: "A/Two.swift"},
				{OldPath: "Three.swift", NewPath: "A/Three.swift"},
				{OldPath: "Four.swift", NewPath: "A/Four.swift"},
			},
		},
		{
			name:    "New path keeps extra equals",
			content: `Old.swift=New=V2.swift`,
			expected: []pbxsync.PathMapping{
				{OldPath: "Old.swift", NewPath: "New=V2.swift"},
			},
		},
		{
			name:        "Invalid format - no equals",
			content:     `INVALID_LINE`,
			expectError: true,
			errorMsg:    "invalid format",
		},
		{
			name:        "Invalid format - empty old path",
			content:     `=New.swift`,
			expectError: true,
			errorMsg:    "empty old path",
		},
		{
			name: "Invalid format - empty new path reports line number",
			content: `Good.swift=Better.swift
Old.swift=`,
			expectError: true,
			errorMsg:    "line 2: empty new path",
		},
		{
			name: "Complex real-world example",
			content: `# Phase 1: flatten the legacy Sources tree
Sources/App/Main.swift=App/Main.swift
Sources/App/Scene Delegate.swift=App/SceneDelegate.swift

# Phase 2: feature folders
"Sources/Views/Home View.swift"=Features/Home/HomeView.swift
Sources/Models/User.swift=Core/Models/User.swift`,
			expected: []pbxsync.PathMapping{
				{OldPath: "Sources/App/Main.swift", NewPath: "App/Main.swift"},
				{OldPath: "Sources/App/Scene Delegate.swift", NewPath: "App/SceneDelegate.swift"},
				{OldPath: "Sources/Views/Home View.swift", NewPath: "Features/Home/HomeView.swift"},
				{OldPath: "Sources/Models/User.swift", NewPath: "Core/Models/User.swift"},
			},
		},
		{
			name:     "Empty file",
			content:  "",
			expected: nil,
		},
		{
			name: "Only comments",
			content: `# Comment 1
# Comment 2`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseMapFile([]byte(tt.content))

			if tt.expectError {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}
