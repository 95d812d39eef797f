package snapshot

// Profession is the player's class
type Profession string

const (
	ProfessionGuardian     Profession = "guardian"
	ProfessionWarrior      Profession = "warrior"
	ProfessionEngineer     Profession = "engineer"
	ProfessionRanger       Profession = "ranger"
	ProfessionThief        Profession = "thief"
	ProfessionElementalist Profession = "elementalist"
	ProfessionMesmer       Profession = "mesmer"
	ProfessionNecromancer  Profession = "necromancer"
	ProfessionRevenant     Profession = "revenant"
)

// AllProfessions lists every profession
var AllProfessions = [...]Profession{
	ProfessionGuardian,
	ProfessionWarrior,
	ProfessionEngineer,
	ProfessionRanger,
	ProfessionThief,
	ProfessionElementalist,
	ProfessionMesmer,
	ProfessionNecromancer,
	ProfessionRevenant,
}

// Mount is the active mount, MountNone when on foot
type Mount string

const (
	MountNone         Mount = ""
	MountRaptor       Mount = "raptor"
	MountSpringer     Mount = "springer"
	MountSkimmer      Mount = "skimmer"
	MountJackal       Mount = "jackal"
	MountGriffon      Mount = "griffon"
	MountRollerBeetle Mount = "roller_beetle"
	MountWarclaw      Mount = "warclaw"
	MountSkyscale     Mount = "skyscale"
	MountSkiff        Mount = "skiff"
	MountSiegeTurtle  Mount = "siege_turtle"
)

// AllMounts lists every mount, including on foot
var AllMounts = [...]Mount{
	MountNone,
	MountRaptor,
	MountSpringer,
	MountSkimmer,
	MountJackal,
	MountGriffon,
	MountRollerBeetle,
	MountWarclaw,
	MountSkyscale,
	MountSkiff,
	MountSiegeTurtle,
}

// WeaponType is an equippable weapon kind
type WeaponType string

const (
	WeaponAxe        WeaponType = "axe"
	WeaponDagger     WeaponType = "dagger"
	WeaponMace       WeaponType = "mace"
	WeaponPistol     WeaponType = "pistol"
	WeaponSword      WeaponType = "sword"
	WeaponScepter    WeaponType = "scepter"
	WeaponFocus      WeaponType = "focus"
	WeaponShield     WeaponType = "shield"
	WeaponTorch      WeaponType = "torch"
	WeaponWarhorn    WeaponType = "warhorn"
	WeaponGreatsword WeaponType = "greatsword"
	WeaponHammer     WeaponType = "hammer"
	WeaponLongbow    WeaponType = "longbow"
	WeaponRifle      WeaponType = "rifle"
	WeaponShortbow   WeaponType = "shortbow"
	WeaponStaff      WeaponType = "staff"
	WeaponSpear      WeaponType = "spear"
	WeaponTrident    WeaponType = "trident"
	WeaponHarpoonGun WeaponType = "harpoon_gun"
)

// AllWeapons lists every weapon type
var AllWeapons = [...]WeaponType{
	WeaponAxe, WeaponDagger, WeaponMace, WeaponPistol, WeaponSword, WeaponScepter,
	WeaponFocus, WeaponShield, WeaponTorch, WeaponWarhorn,
	WeaponGreatsword, WeaponHammer, WeaponLongbow, WeaponRifle, WeaponShortbow, WeaponStaff,
	WeaponSpear, WeaponTrident, WeaponHarpoonGun,
}

// Player holds the character facts used by trigger evaluators
type Player struct {
	Name            string
	Profession      Profession
	Specializations []uint32
	Traits          []uint32
	Weapons         []WeaponType
	Mount           Mount
	InCombat        bool
}

// HasTrait reports whether the trait is currently selected
func (p *Player) HasTrait(trait uint32) bool {
	for _, t := range p.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// HasSpecialization reports whether the specialization is currently equipped
func (p *Player) HasSpecialization(spec uint32) bool {
	for _, s := range p.Specializations {
		if s == spec {
			return true
		}
	}
	return false
}

// HasWeapon reports whether the weapon type is in the active weapon set
func (p *Player) HasWeapon(weapon WeaponType) bool {
	for _, w := range p.Weapons {
		if w == weapon {
			return true
		}
	}
	return false
}

// MapCategory groups maps by game mode
type MapCategory string

const (
	MapUnknown     MapCategory = "unknown"
	MapPvE         MapCategory = "pve"
	MapInstance    MapCategory = "instance"
	MapPvP         MapCategory = "pvp"
	MapWvW         MapCategory = "wvw"
	MapSpecial     MapCategory = "special"
	MapCompetitive MapCategory = "competitive"
)

// AllMapCategories lists every map category
var AllMapCategories = [...]MapCategory{
	MapUnknown,
	MapPvE,
	MapInstance,
	MapPvP,
	MapWvW,
	MapSpecial,
	MapCompetitive,
}

// Map is the current map
type Map struct {
	ID       uint32
	Category MapCategory
}
