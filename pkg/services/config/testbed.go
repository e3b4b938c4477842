package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/isobench/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const testbedSection = "testbed"

func DefaultTestbed() domain.Testbed {
	return domain.Testbed{
		Application:       "Nginx",
		BaselinePlatform:  "KVM virtual machine (Ubuntu 22.04)",
		CandidatePlatform: "Docker official nginx image",
		LoadTool:          "Apache Bench (ab)",
	}
}

// LoadTestbed reads the [testbed] section of an ini file. Keys that are missing keep
// their defaults; an empty path or a missing file yields the defaults.
//
//	[testbed]
//	application = Nginx
//	baseline_platform = KVM virtual machine (Ubuntu 22.04)
//	candidate_platform = Docker official nginx image
//	load_tool = Apache Bench (ab)
func LoadTestbed(path string) (domain.Testbed, error) {
	tb := DefaultTestbed()
	if path == "" {
		return tb, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return tb, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return domain.Testbed{}, fmt.Errorf("failed to read testbed file: %w", err)
	}

	section := cfg.Section(testbedSection)
	tb.Application = section.Key("application").MustString(tb.Application)
	tb.BaselinePlatform = section.Key("baseline_platform").MustString(tb.BaselinePlatform)
	tb.CandidatePlatform = section.Key("candidate_platform").MustString(tb.CandidatePlatform)
	tb.LoadTool = section.Key("load_tool").MustString(tb.LoadTool)
	return tb, nil
}
