// Package config loads the settings of the go-humans server and client.
//
// Server settings come from four layers, each overriding the non-zero
// fields of the one before it:
//
//	defaults < environment (APP_*, SERVER_*, STORAGE_*) < flags < JSON file
//
// The JSON file is named by -c or CONFIG. The merged result is validated
// before [GetStructuredConfig] returns it. A token sign key and the admin
// credentials are required unless authentication is disabled.
//
// The client reads only defaults, ADAPTER_* and CLIENT_* variables and
// flags, see [GetClientConfig].
package config
