//go:build !windows && !darwin

package filelist

const foldMetadataCase = false

var metadataDirs = []string{
	"lost+found",
}
