// Package config loads environment-driven configuration structs using
// github.com/caarlos0/env for parsing and github.com/joho/godotenv for local
// .env development overrides.
//
// Every configurable package in this module exposes its own env-tagged Config
// struct; this package is the single place that turns the environment into
// those structs.
package config
