// Package files manages the upload and output directories.
//
// Manager writes uploads and generated artifacts atomically (temporary file
// plus rename) and resolves artifact names for download. Only single path
// elements are accepted as names; anything that could reach outside the
// output directory is reported as NOT_FOUND.
//
//	m := files.NewManager(paths, logger)
//	path, err := m.WriteArtifact(ctx, "pubs_summary.docx", data)
//	path, err = m.ResolveArtifact("pubs_summary.docx")
package files
