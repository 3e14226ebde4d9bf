package types

// Version is overwritten at link time with -X.
var Version = "dev"

// AppName is the binary and config directory name.
const AppName = "recent"
