package arch

import (
	"github.com/pkg/errors"

	"github.com/mikeakohn/magic-elf/go/arch/x86_64"
	"github.com/mikeakohn/magic-elf/go/models"
)

var archMap = map[string]*models.Arch{
	"x86_64": x86_64.Arch,
}

func GetArch(name string) (*models.Arch, error) {
	a, ok := archMap[name]
	if !ok {
		return nil, errors.Errorf("Arch '%s' not found.", name)
	}
	return a, nil
}
