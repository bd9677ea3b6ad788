package sdk

// SupportedSchemaMajor is the e2elint://rules schema major version this client understands.
const SupportedSchemaMajor = "1"
