package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		APIKey         string   `json:"api_key"`
		Region         string   `json:"region"`
		CustomEndpoint string   `json:"custom_endpoint"`
		Profile        string   `json:"profile"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Scan struct {
		MaxRetries         *int     `json:"max_retries"`
		PollingInterval    Duration `json:"polling_interval"`
		MaxPollingDuration Duration `json:"max_polling_duration"`
		AppName            string   `json:"app_name"`
		AIModel            string   `json:"ai_model"`
		AppUser            string   `json:"app_user"`
		ContinueOnFail     bool     `json:"continue_on_fail"`
	} `json:"scan,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:      jsonCfg.App.Version,
			LogLevel:     jsonCfg.App.LogLevel,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			APIKey:         jsonCfg.Adapter.APIKey,
			Region:         jsonCfg.Adapter.Region,
			CustomEndpoint: jsonCfg.Adapter.CustomEndpoint,
			Profile:        jsonCfg.Adapter.Profile,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Scan: Scan{
			MaxRetries:         jsonCfg.Scan.MaxRetries,
			PollingInterval:    time.Duration(jsonCfg.Scan.PollingInterval),
			MaxPollingDuration: time.Duration(jsonCfg.Scan.MaxPollingDuration),
			AppName:            jsonCfg.Scan.AppName,
			AIModel:            jsonCfg.Scan.AIModel,
			AppUser:            jsonCfg.Scan.AppUser,
			ContinueOnFail:     jsonCfg.Scan.ContinueOnFail,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
