package fixtures

import _ "embed"

//go:embed testdata/sample.pbxproj
var samplePBXProj string

// SamplePBXProj returns a manifest shaped like a freshly generated iOS
// project: the three synchronized sections surrounded by the groups,
// native target, project object, and build configurations the builder
// fixtures leave out. Tests use it to verify behavior against text the
// synchronizer must step around, including a second build phase with its
// own files list and a quoted path value.
func SamplePBXProj() string {
	return samplePBXProj
}
