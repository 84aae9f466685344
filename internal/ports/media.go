package ports

// MediaStore defines the interface for entry attachments
type MediaStore interface {
	// Add copies the file at srcPath into the entry's attachments
	Add(entryID, srcPath string) (string, error)

	// List returns attachment filenames of an entry, sorted
	List(entryID string) ([]string, error)

	// Remove deletes a single attachment
	Remove(entryID, filename string) error
}

// Encryptor defines the interface for file encryption
type Encryptor interface {
	// Encrypt writes <path>.gpg for recipient and returns the output path
	Encrypt(path, recipient string) (string, error)

	// Decrypt writes path without its .gpg suffix and returns the output path
	Decrypt(path string) (string, error)

	// IsAvailable reports whether the encryption backend can run
	IsAvailable() bool
}
