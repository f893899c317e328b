// pre_processor.go implements the Oxy WGSL include pre-processor. A line of the form
//
//	//@oxy:include <name>
//
// is replaced with the registered WGSL source for <name>, so host-side layouts that the engine
// writes (the camera uniform, the instance matrix input) are declared once and shared by every shader.
package shader

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a WGSL comment line.
const annotationPrefix = "@oxy:"

// CameraUniformSource is the WGSL definition of the CameraUniform struct the scene uploads every frame.
//
//go:embed assets/camera_uniform.wgsl
var CameraUniformSource string

// InstanceInputSource is the WGSL definition of the per-instance model matrix vertex input.
//
//go:embed assets/instance_input.wgsl
var InstanceInputSource string

// Built-in include names.
const (
	IncludeCamera   = "camera"
	IncludeInstance = "instance"
)

// PreProcessor expands //@oxy:include lines in WGSL source.
type PreProcessor interface {
	// Process returns source with every include line replaced by the registered WGSL text.
	//
	// Parameters:
	//   - source: the raw WGSL shader source
	//
	// Returns:
	//   - string: the expanded source
	//   - error: an error naming the line if an annotation is malformed or references an unknown include
	Process(source string) (string, error)

	// Register adds or replaces an include.
	//
	// Parameters:
	//   - name: the include name used after //@oxy:include
	//   - source: the WGSL text substituted for it
	Register(name, source string)
}

type preProcessor struct {
	includes map[string]string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the built-in camera and instance includes registered.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		includes: map[string]string{
			IncludeCamera:   CameraUniformSource,
			IncludeInstance: InstanceInputSource,
		},
	}
}

func (p *preProcessor) Register(name, source string) {
	p.includes[name] = source
}

func (p *preProcessor) Process(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		name, ok, err := parseInclude(line, i+1)
		if err != nil {
			return "", err
		}
		if !ok {
			out = append(out, line)
			continue
		}
		src, found := p.includes[name]
		if !found {
			return "", fmt.Errorf("line %d: unknown @oxy:include argument %q (known: %v)", i+1, name, slices.Sorted(maps.Keys(p.includes)))
		}
		out = append(out, strings.TrimRight(src, "\n"))
	}
	return strings.Join(out, "\n"), nil
}

// parseInclude recognizes a //@oxy:include line. Lines without the annotation prefix are not includes.
func parseInclude(line string, lineNum int) (string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return "", false, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return "", false, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return "", false, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}
	if args[0] != "include" {
		return "", false, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
	if len(args) != 2 {
		return "", false, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
	}
	return args[1], true, nil
}

