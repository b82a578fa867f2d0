package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		MRNKeyPath string `env:"MRN_KEY_PATH" json:"mrn_key_path"`
	} `envPrefix:"APP_" json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `env:"DATABASE_URI" json:"dsn"`
		} `envPrefix:"DB_" json:"db,omitempty"`

		Images struct {
			Dir string `env:"DIR" json:"dir"`
		} `envPrefix:"IMAGES_" json:"images,omitempty"`
	} `envPrefix:"STORAGE_" json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `env:"ADDRESS" json:"http_address"`
		RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
	} `envPrefix:"SERVER_" json:"server,omitempty"`

	Quality struct {
		ScorerURL string   `env:"SCORER_URL" json:"scorer_url"`
		Deadline  Duration `env:"DEADLINE" json:"deadline"`
	} `envPrefix:"QUALITY_" json:"quality,omitempty"`
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
			MRNKeyPath: jsonCfg.App.MRNKeyPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Images: Images{
				Dir: jsonCfg.Storage.Images.Dir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Quality: Quality{
			ScorerURL: jsonCfg.Quality.ScorerURL,
			Deadline:  time.Duration(jsonCfg.Quality.Deadline),
		},
		JSONFilePath: "",
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
