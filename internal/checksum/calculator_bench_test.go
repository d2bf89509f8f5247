package checksum

import (
	"strings"
	"testing"
)

// BenchmarkCalculate benchmarks digest calculation over a typical manifest
func BenchmarkCalculate(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("\t\tA1B2C3D4E5F60718293A4B5C /* HomeView.swift in Sources */ = {isa = PBXBuildFile; fileRef = 0F1E2D3C4B5A69788796A5B4 /* HomeView.swift */; };\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.Calculate(content)
	}
}

// BenchmarkCalculateLargeManifest benchmarks digesting a project-sized manifest
func BenchmarkCalculateLargeManifest(b *testing.B) {
	calculator := New()
	var sb strings.Builder
	sb.WriteString("// !$*UTF8*$!\n{\n\tobjects = {\n")
	sb.WriteString("/* Begin PBXFileReference section */\n")
	for i := 0; i < 2000; i++ {
		sb.WriteString("\t\t0F1E2D3C4B5A69788796A5B4 /* HomeView.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = HomeView.swift; sourceTree = \"<group>\"; };\n")
	}
	sb.WriteString("/* End PBXFileReference section */\n\t};\n}\n")
	content := []byte(sb.String())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.Calculate(content)
	}
}
