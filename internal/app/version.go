package app

// Version is set at build time with -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"
