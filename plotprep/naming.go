// SPDX-License-Identifier: MIT

package plotprep

import (
	"path/filepath"
	"strings"
)

// OutputName builds the base name of a plot file:
//
//	<prefix>_CUT-<cut>_DSET-<dataset>_NORM-<norm>[_LOGC]
//
// The separators are fixed; keys are used verbatim.
func OutputName(prefix, cutKey, datasetKey string, norm Norm, logc bool) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("_CUT-")
	sb.WriteString(cutKey)
	sb.WriteString("_DSET-")
	sb.WriteString(datasetKey)
	sb.WriteString("_NORM-")
	sb.WriteString(string(norm))
	if logc {
		sb.WriteString("_LOGC")
	}

	return sb.String()
}

// OutputPath joins folder with OutputName.
func OutputPath(folder, prefix, cutKey, datasetKey string, norm Norm, logc bool) string {
	return filepath.Join(folder, OutputName(prefix, cutKey, datasetKey, norm, logc))
}
