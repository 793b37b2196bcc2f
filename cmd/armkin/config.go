// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/katalvlaran/armkin/arm"
)

const (
	envPrefix = "ARMKIN"

	// cfgKeyLink is formatted with the 1-based link number and a field name.
	cfgKeyLink = "links.link%d.%s"
)

// defaultConfigYAML documents the config file layout; `armkin overview` prints it.
const defaultConfigYAML = `# armkin configuration
links:
  link1: {length: 118, min: -80, max: 80}
  link2: {length: 150, min: 5, max: 175}
  link3: {length: 150, min: -115, max: 55}
  link4: {length: 54, min: -85, max: 85}
  link5: {length: 0, min: 0, max: 0}
`

func linkKey(n int, field string) string { return fmt.Sprintf(cfgKeyLink, n, field) }

// loadLinks reads link geometry with viper: ARMKIN_LINKS_LINKn_{LENGTH,MIN,MAX}
// environment variables, then the config file (optional), then arm.Default.
func loadLinks(configFile string) ([arm.NumLinks]arm.Link, error) {
	var out [arm.NumLinks]arm.Link

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for i, l := range arm.Default().Links() {
		v.SetDefault(linkKey(i+1, "length"), l.Length)
		v.SetDefault(linkKey(i+1, "min"), l.Min)
		v.SetDefault(linkKey(i+1, "max"), l.Max)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return out, fmt.Errorf("read config: %w", err)
		}
	}

	for i := range out {
		n := i + 1
		length, err := cast.ToFloat64E(v.Get(linkKey(n, "length")))
		if err != nil {
			return out, fmt.Errorf("%s: %v: %w", linkKey(n, "length"), err, arm.ErrBadLinkSpec)
		}
		lo, err := cast.ToIntE(v.Get(linkKey(n, "min")))
		if err != nil {
			return out, fmt.Errorf("%s: %v: %w", linkKey(n, "min"), err, arm.ErrBadLinkSpec)
		}
		hi, err := cast.ToIntE(v.Get(linkKey(n, "max")))
		if err != nil {
			return out, fmt.Errorf("%s: %v: %w", linkKey(n, "max"), err, arm.ErrBadLinkSpec)
		}
		out[i] = arm.Link{Length: length, Min: lo, Max: hi}
	}

	return out, nil
}
