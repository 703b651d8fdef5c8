package player

// ItemEffect is the stat an upgrade modifies.
type ItemEffect string

const (
	EffectSpeedBoost        ItemEffect = "speed_boost"         // multiplies speed
	EffectInteractionRange  ItemEffect = "interaction_range"   // multiplies interaction range
	EffectXPBoost           ItemEffect = "xp_boost"            // multiplies xp gain
	EffectMagnetRange       ItemEffect = "magnet_range"        // adds pickup radius
	EffectCoinDoubler       ItemEffect = "coin_doubler_chance" // chance to double a pickup's coins
	EffectTeleportCostMult  ItemEffect = "teleport_cost_mult"  // replaces the teleport cost multiplier
	EffectHeartToXP         ItemEffect = "heart_to_xp"         // hearts convert to xp
)

// SkillEffect is the stat a skill-tree node modifies.
type SkillEffect string

const (
	SkillSpeedPercent        SkillEffect = "speed_percent"
	SkillCoinGainPercent     SkillEffect = "coin_gain_percent"
	SkillGemFindChance       SkillEffect = "gem_find_chance"
	SkillXPGainPercent       SkillEffect = "xp_gain_percent"
	SkillShopDiscountPercent SkillEffect = "shop_discount_percent"
	SkillGemSellPercent      SkillEffect = "gem_sell_percent"
	SkillTeleportReduction   SkillEffect = "teleport_cost_reduction_percent"
)

// ShopItem is a permanent upgrade purchasable with coins.
type ShopItem struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Cost        int        `yaml:"cost"`
	Effect      ItemEffect `yaml:"effect"`
	Value       float64    `yaml:"value"`
}

// SkillCost is what unlocking a skill debits: coins plus per-color gems.
type SkillCost struct {
	Coins int            `yaml:"coins,omitempty"`
	Gems  map[string]int `yaml:"gems,omitempty"`
}

// Skill is one node of the skill tree. Predecessor links form a DAG; a node
// is unlockable only once its predecessor is unlocked, the level requirement
// is met and the cost is affordable.
type Skill struct {
	ID            string      `yaml:"id"`
	Name          string      `yaml:"name"`
	Description   string      `yaml:"description"`
	Cost          SkillCost   `yaml:"cost"`
	RequiredLevel int         `yaml:"required_level"`
	RequiresSkill string      `yaml:"requires,omitempty"`
	Effect        SkillEffect `yaml:"effect"`
	Value         float64     `yaml:"value"`
	Tier          int         `yaml:"tier"`
	Branch        string      `yaml:"branch"`
}

// Catalog is the static upgrade and skill content the progression model
// resolves ids against.
type Catalog struct {
	ShopItems []ShopItem
	Skills    []Skill

	items  map[string]*ShopItem
	skills map[string]*Skill
}

// NewCatalog builds a catalog with id lookup tables.
func NewCatalog(items []ShopItem, skills []Skill) *Catalog {
	c := &Catalog{
		ShopItems: items,
		Skills:    skills,
		items:     make(map[string]*ShopItem, len(items)),
		skills:    make(map[string]*Skill, len(skills)),
	}
	for i := range c.ShopItems {
		c.items[c.ShopItems[i].ID] = &c.ShopItems[i]
	}
	for i := range c.Skills {
		c.skills[c.Skills[i].ID] = &c.Skills[i]
	}
	return c
}

// Item resolves a shop item by id.
func (c *Catalog) Item(id string) (*ShopItem, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Skill resolves a skill by id.
func (c *Catalog) Skill(id string) (*Skill, bool) {
	s, ok := c.skills[id]
	return s, ok
}
