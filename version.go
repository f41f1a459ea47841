package beaver

const Version = "v0.1.0"
