package triage

import "math/rand/v2"

// adminAliases is the pool of names automated analysis comments are posted
// under. Customers see a person, not a bot.
var adminAliases = []string{
	"에단", "미러", "마이클", "샘슨", "조나단", "엘리사",
	"미첼", "에비게일", "나탸샤", "촬리", "버클리", "엣지",
}

// RandomAdminAlias picks a display name for an automated comment.
func RandomAdminAlias() string {
	return adminAliases[rand.IntN(len(adminAliases))]
}
