package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonApp, jsonServer and jsonStorage are the sections of the optional
// configuration file:
//
//	{
//	  "app":     {"token_duration": "30m", "auth_disabled": false, ...},
//	  "server":  {"http_address": ":8080", "request_timeout": "10s"},
//	  "storage": {"db": {"dsn": "humans.db"}}
//	}
type jsonApp struct {
	TokenSignKey  string   `json:"token_sign_key"`
	TokenIssuer   string   `json:"token_issuer"`
	TokenDuration Duration `json:"token_duration"`
	AuthDisabled  bool     `json:"auth_disabled"`
	AdminLogin    string   `json:"admin_login"`
	AdminPassword string   `json:"admin_password"`
	Greeting      string   `json:"greeting"`
	Version       string   `json:"version"`
}

type jsonServer struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

type jsonStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
}

type jsonConfig struct {
	App     jsonApp     `json:"app"`
	Server  jsonServer  `json:"server"`
	Storage jsonStorage `json:"storage"`
}

func (c jsonConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  c.App.TokenSignKey,
			TokenIssuer:   c.App.TokenIssuer,
			TokenDuration: time.Duration(c.App.TokenDuration),
			AuthDisabled:  c.App.AuthDisabled,
			AdminLogin:    c.App.AdminLogin,
			AdminPassword: c.App.AdminPassword,
			Greeting:      c.App.Greeting,
			Version:       c.App.Version,
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: c.Storage.DB.DSN},
		},
	}
}

// parseJSON reads the configuration file at path. Unknown keys are rejected
// so that a misspelled option does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var jsonCfg jsonConfig
	if err = dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs from %s: %w", path, err)
	}

	return jsonCfg.structured(), nil
}

// Duration accepts either a Go duration string ("30m", "1h30m") or a number
// of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("invalid duration: %s", b)
	}
	*d = Duration(ns)

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
