// Package config aggregates the partial configurations of every subsystem
// (server, store, catalog, storage, log) into one struct loaded from the
// environment.
//
// Defaults are declared on the partial config structs via 'default' struct
// tags and bound into Viper reflectively, so adding a config key never
// requires touching this package. A .env file, if present, is overlaid on
// the process environment via godotenv.
package config
