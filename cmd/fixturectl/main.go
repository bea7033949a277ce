package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	versionable "github.com/CenterforYouthEngagement/Versionable"
	"github.com/CenterforYouthEngagement/Versionable/internal/fixture"
	"github.com/CenterforYouthEngagement/Versionable/internal/logging"
	"github.com/CenterforYouthEngagement/Versionable/models"
)

func main() {
	configPath := flag.String("config", "", "path to fixturectl config.toml")
	outDir := flag.String("out", "", "output directory for fixtures (overrides config)")
	pretty := flag.Bool("pretty", false, "indent fixture payloads")
	check := flag.Bool("check", false, "decode and schema-check samples without writing")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("fixturectl: load config")
			os.Exit(1)
		}
		cfg = loaded
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *pretty {
		cfg.Pretty = true
	}

	if err := run(cfg, *check); err != nil {
		log.Error().Err(err).Msg("fixturectl failed")
		os.Exit(1)
	}
}

func run(cfg Config, checkOnly bool) error {
	schemas, err := compileSchemas(cfg)
	if err != nil {
		return err
	}

	writer := fixture.NewWriter(cfg.OutDir, cfg.Pretty)
	for _, s := range models.Samples() {
		if err := decodeCheck(s); err != nil {
			return fmt.Errorf("sample %s v%d does not decode: %w", s.Model, s.Version, err)
		}
		if schema, ok := schemas[s.Model]; ok && s.Version == latestVersions()[s.Model] {
			if err := schema.Validate(s.Payload); err != nil {
				return fmt.Errorf("sample %s v%d: %w", s.Model, s.Version, err)
			}
		}
		if checkOnly {
			log.Info().Str("model", s.Model).Int("version", int(s.Version)).Msg("sample ok")
			continue
		}
		if _, err := writer.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// decodeCheck proves each recorded payload still decodes through the
// current protocol before it is written out.
func decodeCheck(s fixture.Sample) error {
	switch s.Model {
	case "profile":
		_, err := versionable.Decode[models.Profile](s.Payload)
		return err
	case "device":
		_, err := versionable.Decode[models.Device](s.Payload)
		return err
	default:
		return fmt.Errorf("unknown model %q", s.Model)
	}
}

func compileSchemas(cfg Config) (map[string]*fixture.Schema, error) {
	if !cfg.ValidateSchemas {
		return nil, nil
	}
	sources := map[string]string{
		"profile": models.ProfileSchema,
		"device":  models.DeviceSchema,
	}
	schemas := make(map[string]*fixture.Schema, len(sources))
	for name, src := range sources {
		schema, err := fixture.CompileSchema(name+".schema.json", src)
		if err != nil {
			return nil, err
		}
		schemas[name] = schema
	}
	return schemas, nil
}

func latestVersions() map[string]versionable.Version {
	return map[string]versionable.Version{
		"profile": models.Profile{}.Versions().Latest(),
		"device":  models.Device{}.Versions().Latest(),
	}
}
