// Package assets provides the starter flyer template and content file used
// to scaffold a new flyer project.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    └── EmbeddedLoader    - loads from go:embed filesystem
//
// Assets are organized by kind:
//
//	templates/
//	└── {name}.html          # HTML template with the ten box placeholders
//	content/
//	└── {name}.md            # Content file with five "---" sections
//
// # Security
//
// Asset names are validated to prevent path traversal.
package assets
