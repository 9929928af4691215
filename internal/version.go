package internal

// Version is the current ipatrans release version
const Version = "0.1.0"
