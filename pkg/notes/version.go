package notes

// Version is the release version reported by the notes CLI.
const Version = "v0.1.0"
