package game

// Entity ids are opaque, monotonically-issued integer keys into the
// Database arena. Ids are never reused while any live reference could still
// resolve through them; zero is never issued and doubles as "no entity".

// CardID identifies a card or token in any zone.
type CardID int

// PlayerID identifies a player.
type PlayerID int

// ModifierID identifies a continuous-effect modifier.
type ModifierID int

// AbilityID identifies an activated ability, either printed on a card or
// granted by a modifier.
type AbilityID int

// InvalidCard is the zero CardID; it never resolves to an entity.
const InvalidCard CardID = 0
