package lexicon

// manipulationIntensifiers is the fixed escalation vocabulary shared by
// every manipulation lexicon. Absolutes and insults both count: "you
// always ruin everything" reads worse than "you ruined this".
var manipulationIntensifiers = set(
	"always", "never", "constantly", "every", "everything",
	"really", "very", "extremely", "totally", "completely", "obviously",
	"stupid", "idiot", "pathetic", "worthless", "useless",
)

var manipulationLexicons = []Lexicon{
	{
		Name:        "gaslighting",
		Description: "denying the other person's perception or memory",
		Patterns: []Pattern{
			newPattern(`you'?re overreacting`, 3, Gaslighting, "dismisses reaction as excessive"),
			newPattern(`that never happened`, 4, Gaslighting, "flat denial of a remembered event"),
			newPattern(`you'?re imagining (things|it|this)`, 4, Gaslighting, "attributes perception to imagination"),
			newPattern(`you'?re (being )?(too|so|way too) sensitive`, 3, Gaslighting, "reframes harm as oversensitivity"),
			newPattern(`you'?re (crazy|insane|delusional|paranoid)`, 4, Gaslighting, "pathologizes the other person"),
			newPattern(`i never said (that|anything like that)`, 3, Gaslighting, "denies own prior statement"),
			newPattern(`you'?re remembering (it|this|that) wrong`, 4, Gaslighting, "rewrites shared memory"),
			newPattern(`you'?re making (that|this|things|it) up`, 4, Gaslighting, "accuses of fabrication"),
			newPattern(`everyone (else )?(agrees|thinks) with me`, 2, Gaslighting, "invokes an imagined consensus"),
		},
		Intensifiers: manipulationIntensifiers,
	},
	{
		Name:        "guilt_trip",
		Description: "leveraging obligation or affection to extract compliance",
		Patterns: []Pattern{
			newPattern(`after (all|everything) i('ve| have)? done`, 3, GuiltTrip, "invokes a debt of past favors"),
			newPattern(`if you (really |truly )?loved me`, 4, GuiltTrip, "conditions love on compliance"),
			newPattern(`you owe me`, 3, GuiltTrip, "asserts an unpayable debt"),
			newPattern(`i('ve| have) sacrificed (so much|everything)`, 3, GuiltTrip, "martyrdom framing"),
			newPattern(`you('d| would) (do it|help) if you cared`, 3, GuiltTrip, "equates refusal with not caring"),
			newPattern(`don'?t you (even )?care`, 2, GuiltTrip, "implies indifference"),
			newPattern(`i guess i('m| am) just not important`, 2, GuiltTrip, "self-pity as pressure"),
		},
		Intensifiers: manipulationIntensifiers,
	},
	{
		Name:        "blame_shift",
		Description: "relocating responsibility for own behavior onto the target",
		Patterns: []Pattern{
			newPattern(`(this is|it'?s) (all )?your fault`, 3, BlameShift, "direct fault transfer"),
			newPattern(`look (at )?what you made me do`, 4, BlameShift, "frames own action as forced"),
			newPattern(`i wouldn'?t have to if you`, 3, BlameShift, "conditions own behavior on target's"),
			newPattern(`you brought this on yourself`, 3, BlameShift, "casts harm as deserved"),
			newPattern(`now i'?m the (bad guy|villain)`, 2, BlameShift, "reverses victim and offender"),
			newPattern(`you started (it|this)`, 2, BlameShift, "origin-shifting"),
		},
		Intensifiers: manipulationIntensifiers,
	},
	{
		Name:        "control",
		Description: "threats, ultimatums, and permission-gating",
		Patterns: []Pattern{
			newPattern(`you'?re not (allowed|permitted) to`, 4, Control, "permission-gating an adult"),
			newPattern(`i (forbid you|won'?t let you)`, 4, Control, "explicit prohibition"),
			newPattern(`you('ll| will) regret (it|this)`, 4, Control, "open-ended threat"),
			newPattern(`or else`, 3, Control, "ultimatum marker"),
			newPattern(`who said you could`, 3, Control, "retroactive permission demand"),
			newPattern(`if you (ever )?leave`, 3, Control, "exit threat"),
			newPattern(`you('re| are) not going anywhere`, 4, Control, "movement restriction"),
		},
		Intensifiers: manipulationIntensifiers,
	},
	{
		Name:        "belittling",
		Description: "degrading the target's competence or worth",
		Patterns: []Pattern{
			newPattern(`\b(stupid|pathetic|useless|worthless|idiot)\b`, 2, Belittling, "degrading vocabulary"),
			newPattern(`you can'?t do anything right`, 4, Belittling, "global competence attack"),
			newPattern(`no one (else )?would (ever )?(want|put up with) you`, 5, Belittling, "isolation through worthlessness"),
			newPattern(`you'?re nothing without me`, 5, Belittling, "dependency assertion"),
			newPattern(`you call (that|yourself)`, 2, Belittling, "mocking of effort or identity"),
			newPattern(`even a child could`, 2, Belittling, "infantilizing comparison"),
		},
		Intensifiers: manipulationIntensifiers,
	},
}

// ManipulationLexicons returns the registry's manipulation-side
// lexicons. The returned slice and its contents must not be mutated.
func ManipulationLexicons() []Lexicon {
	return manipulationLexicons
}

// ManipulationIntensifiers returns the shared escalation vocabulary for
// manipulation severity scoring.
func ManipulationIntensifiers() map[string]struct{} {
	return manipulationIntensifiers
}
