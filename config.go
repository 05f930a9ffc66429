package phasedarray

import (
	ms "github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ReadSpecConfig loads an ArraySpec from a "config" file in dir.
// Keys missing from the file fall back to the generic preset; a
// missing file yields the preset unchanged.
func ReadSpecConfig(dir string) (ArraySpec, error) {
	def := GenericSpec()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")

	v.SetDefault("Resolution", def.Resolution)
	v.SetDefault("Range", def.Range)
	v.SetDefault("ElementSeparation", def.ElementSeparation)
	v.SetDefault("ElementCount", def.ElementCount)
	v.SetDefault("ElementPhaseStep", def.ElementPhaseStep)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return ArraySpec{}, err
		}
	}

	var spec ArraySpec
	if err := ms.Decode(v.AllSettings(), &spec); err != nil {
		return ArraySpec{}, err
	}
	return spec, spec.Validate()
}
