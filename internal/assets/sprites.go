// internal/assets/sprites.go
package assets

import (
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	DefaultRoot  = "assets"
	DefaultArmor = "Armor_001"
)

// Слои героя, от заднего к переднему. Оружие рисуется между armL и armR.
const (
	PartCloak  = "cloak"
	PartLegL   = "legL"
	PartLegR   = "legR"
	PartBody   = "body"
	PartHead   = "head"
	PartArmL   = "armL"
	PartWeapon = "weapon"
	PartArmR   = "armR"
)

// PartOrder is the back-to-front layer order of the paper-doll hero.
var PartOrder = []string{PartCloak, PartLegL, PartLegR, PartBody, PartHead, PartArmL, PartWeapon, PartArmR}

// Manifest lists the files a sprite set is built from.
type Manifest struct {
	Armor string
	Paths map[string]string
}

// WeaponFile picks the sword that ships with an armor set.
func WeaponFile(armor string) string {
	if armor == "Armor_002" {
		return "Weapon_Swords_002.png"
	}
	return "Weapon_Swords_001.png"
}

// Resolve builds the manifest of the hero parts for one armor set.
func Resolve(root, armor string) Manifest {
	if root == "" {
		root = DefaultRoot
	}
	if armor == "" {
		armor = DefaultArmor
	}
	hero := filepath.Join(root, "hero", "chibi-elf")
	parts := filepath.Join(hero, "sets", armor, "parts")
	m := Manifest{Armor: armor, Paths: make(map[string]string, len(PartOrder))}
	for _, name := range PartOrder {
		if name == PartWeapon {
			m.Paths[name] = filepath.Join(hero, "weapons", WeaponFile(armor))
			continue
		}
		m.Paths[name] = filepath.Join(parts, name+".png")
	}
	return m
}

// Missing returns the parts whose files do not exist, in layer order.
func (m Manifest) Missing() []string {
	var out []string
	for _, name := range PartOrder {
		if _, err := os.Stat(m.Paths[name]); err != nil {
			out = append(out, name)
		}
	}
	return out
}

// Usable reports whether the set can be drawn from files. The body defines
// the template size, without it nothing lines up.
func (m Manifest) Usable() bool {
	_, err := os.Stat(m.Paths[PartBody])
	return err == nil
}

// SpriteSet хранит загруженные слои героя. Procedural означает, что PNG не
// нашлись и рендер рисует героя векторно.
type SpriteSet struct {
	Parts      map[string]*ebiten.Image
	Procedural bool
	Width      int
	Height     int
}

// Part returns a loaded layer or nil.
func (s *SpriteSet) Part(name string) *ebiten.Image {
	if s == nil || s.Parts == nil {
		return nil
	}
	return s.Parts[name]
}

// Load reads the manifest once. Missing optional layers are skipped; a
// missing or broken body switches the whole set to procedural drawing.
func Load(m Manifest, logger *log.Logger) *SpriteSet {
	if logger == nil {
		logger = log.Default()
	}
	set := &SpriteSet{Parts: make(map[string]*ebiten.Image)}
	if !m.Usable() {
		logger.Warn("hero sprites not found, using procedural hero", "armor", m.Armor, "path", m.Paths[PartBody])
		set.Procedural = true
		return set
	}
	for _, name := range PartOrder {
		path := m.Paths[name]
		if _, err := os.Stat(path); err != nil {
			logger.Debug("hero part skipped", "part", name, "path", path)
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("cannot decode hero part", "part", name, "err", err)
			continue
		}
		set.Parts[name] = img
	}
	body := set.Parts[PartBody]
	if body == nil {
		logger.Warn("hero body failed to load, using procedural hero", "armor", m.Armor)
		set.Procedural = true
		set.Parts = map[string]*ebiten.Image{}
		return set
	}
	set.Width, set.Height = body.Bounds().Dx(), body.Bounds().Dy()
	logger.Info("hero sprites loaded", "armor", m.Armor, "parts", len(set.Parts))
	return set
}
