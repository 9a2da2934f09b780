// Package assets loads page templates and ships the starter project.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── FilesystemLoader  - loads templates from disk, relative to a base directory
//	    └── EmbeddedLoader    - loads starter templates compiled into the binary
//
// The build pass always reads templates from disk: a missing template is a
// fatal error, never a silent fallback to the embedded copy. The embedded
// starter files are only used to scaffold a new project.
//
// # Starter Layout
//
// Scaffold writes the embedded starter files into a directory:
//
//	{dir}/
//	├── pagegen.yaml            # config with default paths and layout
//	├── data.json               # city records
//	├── data_services.json      # service records
//	├── template_city.html
//	└── template_service.html
package assets
