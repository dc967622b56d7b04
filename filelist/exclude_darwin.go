package filelist

// APFS and HFS+ volumes are case-insensitive by default.
const foldMetadataCase = true

var metadataDirs = []string{
	".DocumentRevisions-V100",
	".Spotlight-V100",
	".TemporaryItems",
	".Trashes",
	".fseventsd",
}
