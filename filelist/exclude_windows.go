package filelist

// NTFS names are case-insensitive; Vista and later store "$Recycle.Bin".
const foldMetadataCase = true

var metadataDirs = []string{
	"$RECYCLE.BIN",
	"System Volume Information",
}
