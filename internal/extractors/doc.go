// Package extractors groups the file-format extractors. Each
// subpackage converts one format into the ordered paragraph text the
// analysis pipeline consumes.
package extractors
