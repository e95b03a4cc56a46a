package main

// AccountDTO represents the Riot Account-v1 DTO.
type AccountDTO struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerDTO represents the Summoner-v4 DTO.
type SummonerDTO struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntryDTO represents one queue's ranked standing for a player.
type LeagueEntryDTO struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	SummonerID   string `json:"summonerId"`
	PUUID        string `json:"puuid,omitempty"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// LeagueListDTO represents an apex league (challenger/grandmaster/master).
type LeagueListDTO struct {
	LeagueID string          `json:"leagueId"`
	Tier     string          `json:"tier"`
	Name     string          `json:"name"`
	Queue    string          `json:"queue"`
	Entries  []LeagueItemDTO `json:"entries"`
}

// LeagueItemDTO is a single entry inside an apex league listing.
type LeagueItemDTO struct {
	SummonerID   string `json:"summonerId"`
	PUUID        string `json:"puuid,omitempty"`
	LeaguePoints int    `json:"leaguePoints"`
	Rank         string `json:"rank"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// ChampionMasteryDTO represents a Champion-Mastery-v4 entry.
type ChampionMasteryDTO struct {
	PUUID                        string `json:"puuid"`
	ChampionID                   int    `json:"championId"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int    `json:"championPoints"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int    `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int    `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	TokensEarned                 int    `json:"tokensEarned"`
}

// MatchDto represents the Riot Match-v5 DTO (simplified)
type MatchDto struct {
	Metadata MatchMetadataDto `json:"metadata"`
	Info     MatchInfoDto     `json:"info"`
}

// MatchMetadataDto represents parts of the metadata for a match
type MatchMetadataDto struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // List of PUUIDs
}

// MatchInfoDto represents parts of the info for a match
type MatchInfoDto struct {
	GameCreation     int64            `json:"gameCreation"`
	GameDuration     int64            `json:"gameDuration"` // Duration in seconds
	GameEndTimestamp int64            `json:"gameEndTimestamp"`
	GameID           int64            `json:"gameId"`
	GameMode         string           `json:"gameMode"`
	GameType         string           `json:"gameType"`
	GameVersion      string           `json:"gameVersion"`
	MapID            int              `json:"mapId"`
	Participants     []ParticipantDto `json:"participants"`
	QueueID          int              `json:"queueId"`
	EndOfGameResult  string           `json:"endOfGameResult,omitempty"`
}

// ParticipantDto represents a participant in a match (simplified)
type ParticipantDto struct {
	PUUID          string `json:"puuid"`
	SummonerName   string `json:"summonerName,omitempty"` // Sometimes empty
	RiotIDGameName string `json:"riotIdGameName,omitempty"`
	RiotIDTagline  string `json:"riotIdTagline,omitempty"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	Win            bool   `json:"win"`

	Kills                int `json:"kills"`
	Deaths               int `json:"deaths"`
	Assists              int `json:"assists"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`
	VisionScore          int `json:"visionScore"`
	GoldEarned           int `json:"goldEarned"`

	Perks                       *PerksDto `json:"perks,omitempty"`
	TeamPosition                string    `json:"teamPosition"`
	Role                        string    `json:"role"`
	Lane                        string    `json:"lane"`
	Item0                       int       `json:"item0"`
	Item1                       int       `json:"item1"`
	Item2                       int       `json:"item2"`
	Item3                       int       `json:"item3"`
	Item4                       int       `json:"item4"`
	Item5                       int       `json:"item5"`
	Item6                       int       `json:"item6"` // Trinket
	Summoner1Id                 int       `json:"summoner1Id"`
	Summoner2Id                 int       `json:"summoner2Id"`
	ChampLevel                  int       `json:"champLevel"`
	TotalDamageDealtToChampions int       `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int       `json:"totalDamageTaken"`
	TimePlayed                  int       `json:"timePlayed"`
}

// Items returns the seven item slots in slot order. Slot value 0 means empty.
func (p *ParticipantDto) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// Keystone returns the first selection of the first perk style block, or 0
// when the perk data is missing.
func (p *ParticipantDto) Keystone() int {
	if p.Perks == nil || len(p.Perks.Styles) == 0 {
		return 0
	}
	first := p.Perks.Styles[0]
	if len(first.Selections) == 0 {
		return 0
	}
	return first.Selections[0].Perk
}

// PerksDto represents perk information
type PerksDto struct {
	StatPerks StatPerksDto `json:"statPerks"`
	Styles    []StyleDto   `json:"styles"`
}

// StatPerksDto represents stat perk selections
type StatPerksDto struct {
	Defense int `json:"defense"`
	Flex    int `json:"flex"`
	Offense int `json:"offense"`
}

// StyleDto represents a perk style (e.g., primary or subStyle)
type StyleDto struct {
	Description string         `json:"description"`
	Selections  []SelectionDto `json:"selections"`
	Style       int            `json:"style"` // Rune tree ID
}

// SelectionDto represents a selected perk
type SelectionDto struct {
	Perk int `json:"perk"` // Perk ID
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`
}

// CurrentGameInfo represents a Spectator-v5 live game. The upstream payload
// is decoded permissively into a map first, then into this struct, so
// unexpected field types do not fail the whole lookup.
type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId" mapstructure:"gameId"`
	GameMode          string                   `json:"gameMode" mapstructure:"gameMode"`
	GameType          string                   `json:"gameType" mapstructure:"gameType"`
	GameQueueConfigID int64                    `json:"gameQueueConfigId" mapstructure:"gameQueueConfigId"`
	MapID             int64                    `json:"mapId" mapstructure:"mapId"`
	GameLength        int64                    `json:"gameLength" mapstructure:"gameLength"`
	PlatformID        string                   `json:"platformId" mapstructure:"platformId"`
	Participants      []CurrentGameParticipant `json:"participants" mapstructure:"participants"`
}

// CurrentGameParticipant is one player in a live game.
type CurrentGameParticipant struct {
	PUUID         string `json:"puuid" mapstructure:"puuid"`
	SummonerID    string `json:"summonerId" mapstructure:"summonerId"`
	RiotID        string `json:"riotId,omitempty" mapstructure:"riotId"`
	ChampionID    int64  `json:"championId" mapstructure:"championId"`
	TeamID        int64  `json:"teamId" mapstructure:"teamId"`
	Spell1ID      int64  `json:"spell1Id" mapstructure:"spell1Id"`
	Spell2ID      int64  `json:"spell2Id" mapstructure:"spell2Id"`
	ProfileIconID int64  `json:"profileIconId" mapstructure:"profileIconId"`
	Bot           bool   `json:"bot" mapstructure:"bot"`

	// Filled in from the static catalog before the payload is returned.
	ChampionName  string `json:"championName,omitempty" mapstructure:"-"`
	ChampionImage string `json:"championImage,omitempty" mapstructure:"-"`
}

// FeaturedGamesDTO is the Spectator-v5 featured-games payload. Individual
// games keep the upstream's loose shape.
type FeaturedGamesDTO struct {
	GameList              []map[string]any `json:"gameList"`
	ClientRefreshInterval int64            `json:"clientRefreshInterval"`
}

// PlatformStatusDTO is the subset of Lol-Status-v4 this system exposes.
type PlatformStatusDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Locales      []string         `json:"locales"`
	Maintenances []map[string]any `json:"maintenances"`
	Incidents    []map[string]any `json:"incidents"`
}

// ItemCount is an item id with the number of games it appeared in.
type ItemCount struct {
	ItemID int `json:"itemId"`
	Count  int `json:"count"`
}

// SpellPairCount is an unordered summoner-spell pair (stored ascending) with
// its frequency.
type SpellPairCount struct {
	Spells [2]int `json:"spells"`
	Count  int    `json:"count"`
}

// KeystoneCount is a keystone perk id with its frequency.
type KeystoneCount struct {
	PerkID int `json:"perkId"`
	Count  int `json:"count"`
}

// ChampionAggregate accumulates one champion's numbers across a batch of
// matches for the target player. The Top* slices are filled when the batch
// is finalized.
type ChampionAggregate struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`

	Games           int   `json:"games"`
	Wins            int   `json:"wins"`
	Kills           int   `json:"kills"`
	Deaths          int   `json:"deaths"`
	Assists         int   `json:"assists"`
	CS              int   `json:"cs"`
	VisionScore     int   `json:"visionScore"`
	Damage          int64 `json:"damage"`
	Gold            int64 `json:"gold"`
	DurationSeconds int64 `json:"durationSeconds"`

	TopItems     []ItemCount      `json:"topItems"`     // up to 6, most frequent first
	TopSpellSets []SpellPairCount `json:"topSpellSets"` // up to 2
	TopKeystones []KeystoneCount  `json:"topKeystones"` // up to 2

	itemCounts     map[int]int
	spellCounts    map[[2]int]int
	keystoneCounts map[int]int
}

// ChampionRecord holds per-champion running totals inside a stats summary.
type ChampionRecord struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Assists int     `json:"assists"`
	CS      int     `json:"cs"`
	Damage  int64   `json:"damage"`
	WinRate float64 `json:"winrate"`
	AvgKDA  float64 `json:"avgKda"`
}

// ChampionPerformance is a ranked best/worst champion row. Only champions
// with at least two games qualify for ranking.
type ChampionPerformance struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	WinRate  float64 `json:"winrate"`
	AvgKDA   float64 `json:"avgKda"`
}

// PlayerStatsSummary is the overall analysis of a batch of matches for one
// player. An empty batch yields a zero-count summary, never an error.
type PlayerStatsSummary struct {
	TotalMatches int     `json:"totalMatches"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winrate"`

	ChampionsPlayed map[string]int `json:"championsPlayed"`
	RolesPlayed     map[string]int `json:"rolesPlayed"`
	LanesPlayed     map[string]int `json:"lanesPlayed"`

	AvgKills        float64 `json:"avgKills"`
	AvgDeaths       float64 `json:"avgDeaths"`
	AvgAssists      float64 `json:"avgAssists"`
	AvgCS           float64 `json:"avgCs"`
	AvgVisionScore  float64 `json:"avgVisionScore"`
	AvgDamage       float64 `json:"avgDamage"`
	AvgGold         float64 `json:"avgGold"`
	AvgGameDuration float64 `json:"avgGameDuration"` // minutes
	KDARatio        float64 `json:"kdaRatio"`

	ChampionStats  map[string]*ChampionRecord `json:"championStats"`
	BestChampions  []ChampionPerformance      `json:"bestChampions"`
	WorstChampions []ChampionPerformance      `json:"worstChampions"`
	PreferredRole  string                     `json:"preferredRole"`
}

// Recommendations is the heuristic output bundle derived from a summary.
type Recommendations struct {
	ChampionPool     []string `json:"championPool"`
	ImprovementAreas []string `json:"improvementAreas"`
	Strengths        []string `json:"strengths"`
	PlaystyleTips    []string `json:"playstyleTips"`
	InGameTips       []string `json:"inGameTips"`
}

// ChampionData holds basic champion information
type ChampionData struct {
	Version string             `json:"version"`
	ID      string             `json:"id"`   // e.g., "Aatrox"
	Key     string             `json:"key"`  // e.g., "266"
	Name    string             `json:"name"` // e.g., "Aatrox"
	Title   string             `json:"title"`
	Image   DDragonImageDTO    `json:"image"`
	Partype string             `json:"partype"` // Resource type (Mana, Energy, etc.)
	Tags    []string           `json:"tags"`
	Stats   map[string]float64 `json:"stats"`
}

// DDragonImageDTO is the sprite descriptor shared by every Data Dragon catalog.
type DDragonImageDTO struct {
	Full   string `json:"full"`   // Aatrox.png
	Sprite string `json:"sprite"` // champion0.png
	Group  string `json:"group"`  // champion
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
}

// DataDragonChampions holds the full champion data structure from Data Dragon
type DataDragonChampions struct {
	Type    string                  `json:"type"`
	Format  string                  `json:"format"`
	Version string                  `json:"version"`
	Data    map[string]ChampionData `json:"data"` // Keyed by champion ID (e.g., "Aatrox")
}

// ItemData holds basic item information from Data Dragon
type ItemData struct {
	Name        string             `json:"name"`
	Description string             `json:"description"` // This can be HTML
	Plaintext   string             `json:"plaintext"`
	Image       DDragonImageDTO    `json:"image"`
	Gold        ItemGoldDTO        `json:"gold"`
	Tags        []string           `json:"tags"`
	Maps        map[string]bool    `json:"maps"`
	Stats       map[string]float64 `json:"stats"`
	Depth       int                `json:"depth,omitempty"` // For component items
}

// ItemGoldDTO for Data Dragon items
type ItemGoldDTO struct {
	Base        int  `json:"base"`
	Purchasable bool `json:"purchasable"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
}

// DataDragonItems holds the full item data structure from Data Dragon
type DataDragonItems struct {
	Type    string              `json:"type"`
	Version string              `json:"version"`
	Data    map[string]ItemData `json:"data"` // Keyed by item ID (e.g., "1001")
}

// RunePathData from Data Dragon
type RunePathData struct {
	ID    int        `json:"id"`
	Key   string     `json:"key"`  // e.g., "Precision"
	Icon  string     `json:"icon"` // path to icon
	Name  string     `json:"name"`
	Slots []RuneSlot `json:"slots"`
}

// RuneSlot from Data Dragon
type RuneSlot struct {
	Runes []RuneInfo `json:"runes"`
}

// RuneInfo from Data Dragon
type RuneInfo struct {
	ID        int    `json:"id"`
	Key       string `json:"key"` // e.g., "PressTheAttack"
	Icon      string `json:"icon"`
	Name      string `json:"name"`
	ShortDesc string `json:"shortDesc"` // Contains HTML
	LongDesc  string `json:"longDesc"`  // Contains HTML
}

// SummonerSpellData from Data Dragon
type SummonerSpellData struct {
	ID          string          `json:"id"`   // e.g., "SummonerFlash"
	Name        string          `json:"name"` // e.g., "Flash"
	Description string          `json:"description"`
	Key         string          `json:"key"` // e.g., "4" for Flash (the ID used in match data)
	Modes       []string        `json:"modes"` // Game modes it's available in
	Image       DDragonImageDTO `json:"image"`
}

// DataDragonSummonerSpells holds the full summoner spell data structure from Data Dragon
type DataDragonSummonerSpells struct {
	Type    string                       `json:"type"`
	Version string                       `json:"version"`
	Data    map[string]SummonerSpellData `json:"data"` // Keyed by spell ID (e.g., "SummonerFlash")
}

// DataDragonVersions lists available Data Dragon versions, newest first.
type DataDragonVersions []string
