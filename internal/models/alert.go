package models

// Alert - уведомление об опасности для судна в пределах одного тика.
// Seq задаёт порядок поступления и разрешает равенство приоритетов.
type Alert struct {
	Aircraft Aircraft `json:"aircraft"`
	Priority int      `json:"priority"`
	Seq      uint64   `json:"seq"`
}

// ProximityPair - пара судов ближе порога предупреждения; живёт один тик
type ProximityPair struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Distance float64 `json:"distance"`
}
