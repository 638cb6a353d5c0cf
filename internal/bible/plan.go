package bible

// PlanDay is one day of the 40-day getting-started reading plan.
type PlanDay struct {
	Day         int    `json:"day"`
	Book        string `json:"book"`
	Chapters    string `json:"chapters"`
	Description string `json:"description"`
}

// FortyDayPlan walks a new reader through the life of Jesus and the early
// church, with a few Psalms and Proverbs mixed in.
var FortyDayPlan = []PlanDay{
	{1, "John", "1", "Who Jesus is: the Word made flesh"},
	{2, "John", "2-3", "First signs and being born again"},
	{3, "John", "4-5", "The woman at the well and the Son's authority"},
	{4, "John", "6", "Jesus the bread of life"},
	{5, "John", "7-8", "Living water and the light of the world"},
	{6, "John", "9-10", "The good shepherd"},
	{7, "Psalms", "23", "The Lord is my shepherd"},
	{8, "John", "11-12", "Lazarus raised; the hour has come"},
	{9, "John", "13-14", "Servant love and the promised Helper"},
	{10, "John", "15-16", "Abide in the vine"},
	{11, "John", "17", "Jesus prays for His people"},
	{12, "John", "18-19", "The arrest and the cross"},
	{13, "John", "20-21", "Resurrection and restoration"},
	{14, "Psalms", "16", "Fullness of joy in God's presence"},
	{15, "Mark", "1-2", "The kingdom at hand"},
	{16, "Mark", "3-4", "Parables of the kingdom"},
	{17, "Mark", "5-6", "Power over sickness, storm, and death"},
	{18, "Mark", "7-8", "Who do you say that I am?"},
	{19, "Mark", "9-10", "Take up your cross"},
	{20, "Proverbs", "3", "Trust in the Lord with all your heart"},
	{21, "Mark", "11-12", "The greatest commandment"},
	{22, "Mark", "13-14", "Watchfulness and the last supper"},
	{23, "Mark", "15-16", "Crucified and risen"},
	{24, "Psalms", "1", "Blessed is the one who delights in God's law"},
	{25, "Acts", "1-2", "The Spirit comes; the church is born"},
	{26, "Acts", "3-4", "Boldness in the name of Jesus"},
	{27, "Acts", "5-7", "The cost of witness"},
	{28, "Acts", "8-9", "The gospel spreads; Saul meets Jesus"},
	{29, "Acts", "10-12", "Good news for all nations"},
	{30, "Psalms", "103", "Bless the Lord, O my soul"},
	{31, "Romans", "1-3", "All have sinned"},
	{32, "Romans", "4-5", "Justified by faith"},
	{33, "Romans", "6-8", "No condemnation; life in the Spirit"},
	{34, "Romans", "12", "Living sacrifice"},
	{35, "Proverbs", "4", "Guard your heart"},
	{36, "Ephesians", "1-2", "Saved by grace through faith"},
	{37, "Ephesians", "3-4", "One body, one Spirit"},
	{38, "Ephesians", "5-6", "Walk in love; the armor of God"},
	{39, "Psalms", "139", "Searched and known by God"},
	{40, "Philippians", "1-4", "Rejoice in the Lord always"},
}
