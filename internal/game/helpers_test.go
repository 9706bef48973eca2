package game

func intp(v int) *int { return &v }

func creatureFace(name string, power, toughness int, keywords ...string) CardFace {
	return CardFace{
		Name:      name,
		Types:     []string{"Creature"},
		Keywords:  keywords,
		Power:     intp(power),
		Toughness: intp(toughness),
	}
}
