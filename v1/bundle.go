package v1

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"cnab.software/bundle/orderedmap"
)

// SchemaVersion is the revision of the bundle descriptor schema this package
// implements.
const SchemaVersion = "v1.0.0-WD"

// These actions are available on every bundle without being declared.
// Entries in Bundle.Actions extend this set.
const (
	ActionInstall   = "install"
	ActionUninstall = "uninstall"
	ActionUpgrade   = "upgrade"
)

// Bundle is a bundle descriptor: a declarative manifest describing a
// multi-image application, including which images it is composed of, which
// parameters and credentials are configurable, and which additional actions
// can be executed on it.
//
// The fields are declared in canonical order, so a plain json.Marshal already
// emits object keys sorted the way canonical form requires.
type Bundle struct {
	// Actions declares custom actions this bundle can perform beyond the
	// default install, upgrade and uninstall, keyed by action name.
	Actions *orderedmap.Map[Action] `json:"actions,omitempty"`
	// Credentials declares the credentials injected into the invocation
	// image at startup time, keyed by credential name.
	Credentials *orderedmap.Map[Credential] `json:"credentials,omitempty"`
	// Custom carries additional tool-specific data. The values are undefined
	// by the schema but must be representable as JSON.
	Custom *orderedmap.Map[json.RawMessage] `json:"custom,omitempty"`
	// Description is a short description of the bundle.
	Description *string `json:"description,omitempty"`
	// Images lists the constituent images of the application described by
	// the bundle, keyed by component name.
	Images *orderedmap.Map[Image] `json:"images,omitempty"`
	// InvocationImages is the list of available bootstrapping images for
	// this bundle. Only one ought to be executed.
	InvocationImages []Image `json:"invocationImages"`
	// Keywords is a list of keywords describing the bundle.
	Keywords []string `json:"keywords,omitempty"`
	// License is the license of the bundle.
	License *string `json:"license,omitempty"`
	// Maintainers is a list of maintainers responsible for the bundle.
	Maintainers []Maintainer `json:"maintainers,omitempty"`
	// Name is the name of the bundle.
	Name string `json:"name"`
	// Parameters declares the configurable inputs injected into the bundle
	// during startup, keyed by parameter name.
	Parameters *orderedmap.Map[Parameter] `json:"parameters,omitempty"`
	// SchemaVersion is the version of the bundle specification the
	// descriptor follows.
	SchemaVersion string `json:"schemaVersion"`
	// Version is the version of the bundle.
	Version string `json:"version"`
}

func (b *Bundle) String() string {
	base := b.Name
	if b.Version != "" {
		base += ":" + b.Version
	}
	if b.SchemaVersion != "" {
		base += fmt.Sprintf(" (schema version %s)", b.SchemaVersion)
	}
	return base
}

// SemVer parses the bundle version as a semantic version.
func (b *Bundle) SemVer() (*semver.Version, error) {
	v, err := semver.NewVersion(b.Version)
	if err != nil {
		return nil, fmt.Errorf("bundle version %q is not semantic: %w", b.Version, err)
	}
	return v, nil
}

// Image describes a container image that is part of a bundle. Invocation
// images and constituent images share this shape.
type Image struct {
	// Digest verifies the integrity of the image content.
	Digest *string `json:"digest,omitempty"`
	// Image is the reference, as a string of the form REPO/NAME:TAG@SHA.
	Image string `json:"image"`
	// ImageType of the image. Treated as an OCI image when unset.
	ImageType *string `json:"imageType,omitempty"`
	// MediaType of the image.
	MediaType *string `json:"mediaType,omitempty"`
	// Platform the image may be deployed on.
	Platform *Platform `json:"platform,omitempty"`
	// Size of the image in bytes.
	Size *int64 `json:"size,omitempty"`
}

// Platform names a machine architecture and operating system pair. Neither
// field is cross-checked against a list of known values.
type Platform struct {
	// Arch is the architecture, such as amd64, i386 or arm64.
	Arch *string `json:"arch,omitempty"`
	// OS is the operating system, such as darwin, windows or linux.
	OS *string `json:"os,omitempty"`
}

// Maintainer describes a party responsible for the bundle. The name is
// required, though the format of its value is unspecified.
type Maintainer struct {
	// Email address of the maintainer.
	Email *string `json:"email,omitempty"`
	// Name of the maintainer.
	Name string `json:"name"`
	// URL with more information about the maintainer.
	URL *string `json:"url,omitempty"`
}

// Credential describes a value injected into the invocation image at bundle
// startup. At least one of Env and Path should be set for the credential to
// be usable, but the schema does not enforce that.
type Credential struct {
	// Description of the credential.
	Description *string `json:"description,omitempty"`
	// Env is the name of the environment variable the value is placed into.
	Env *string `json:"env,omitempty"`
	// Path is the fully qualified file path the value is placed into.
	Path *string `json:"path,omitempty"`
}

// Parameter describes a configurable input injected into the invocation
// image at startup time. The declared constraints (bounds, pattern, allowed
// values) are carried verbatim; enforcing them against a supplied value is
// the installer's job, not this package's.
type Parameter struct {
	// ApplyTo names the actions this parameter applies to. When unset, the
	// parameter applies to all actions.
	ApplyTo []string `json:"applyTo,omitempty"`
	// DefaultValue is used when the parameter is not supplied.
	DefaultValue json.RawMessage `json:"defaultValue,omitempty"`
	// Destination describes where the value is placed in the invocation
	// image.
	Destination Destination `json:"destination"`
	// AllowedValues enumerates the values the parameter may take. Its wire
	// name is "enum".
	AllowedValues []json.RawMessage `json:"enum,omitempty"`
	// ExclusiveMaximum bound for integer values.
	ExclusiveMaximum *int64 `json:"exclusiveMaximum,omitempty"`
	// ExclusiveMinimum bound for integer values.
	ExclusiveMinimum *int64 `json:"exclusiveMinimum,omitempty"`
	// MaxLength bound for string values.
	MaxLength *int64 `json:"maxLength,omitempty"`
	// Maximum bound for integer values.
	Maximum *int64 `json:"maximum,omitempty"`
	// Metadata carries auxiliary information about the parameter.
	Metadata *Metadata `json:"metadata,omitempty"`
	// MinLength bound for string values.
	MinLength *int64 `json:"minLength,omitempty"`
	// Minimum bound for integer values.
	Minimum *int64 `json:"minimum,omitempty"`
	// Pattern is an ECMAScript regular expression string values must match.
	Pattern *string `json:"pattern,omitempty"`
	// Required indicates the parameter must be supplied. Defaults to false.
	Required bool `json:"required,omitempty"`
	// Type is the declared value type of the parameter (string, int, ...).
	// It is an open string, not a closed enumeration.
	Type string `json:"type"`
}

// Destination describes where, in the invocation image, a parameter or
// credential value is placed. Env and Path are a non-exclusive or: the same
// value may be written to both an environment variable and a file.
type Destination struct {
	// Env is the name of the destination environment variable.
	Env *string `json:"env,omitempty"`
	// Path is the fully qualified path to the destination file.
	Path *string `json:"path,omitempty"`
}

// Action is a custom action provided by an invocation image, for example a
// "help" action that prints usage text.
type Action struct {
	// Description of what the action does.
	Description *string `json:"description,omitempty"`
	// Modifies indicates the action changes the installation in some way and
	// should be tracked as a release. Defaults to false.
	Modifies bool `json:"modifies,omitempty"`
	// Stateless indicates the action needs no state information, credentials
	// or parameters to run. Defaults to false.
	Stateless bool `json:"stateless,omitempty"`
}

// Metadata carries auxiliary descriptive information about a parameter.
type Metadata struct {
	// Description of the parameter.
	Description *string `json:"description,omitempty"`
}
