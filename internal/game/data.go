package game

// builtinCatalog 是进程启动时就存在的内置游戏列表。
// 这份数据是静态的，运行期间不会被修改；玩家提交的游戏
// 会以新的ID追加在它之后。MediaRef 是游戏宣传视频的YouTube ID。
var builtinCatalog = []GameDescriptor{
	{ID: 1, Title: "7 Days to Die", URL: "https://store.steampowered.com/app/251570/7_Days_to_Die/", Price: "$20.99", MaxPlayers: "8", MediaRef: "Nl_9h2e-3fM"},
	{ID: 2, Title: "Age of Empires II: Definitive Edition", URL: "https://store.steampowered.com/app/813780/Age_of_Empires_II_Definitive_Edition/", Price: "$34.99", MaxPlayers: "8", MediaRef: "1NhWgW7enMM"},
	{ID: 3, Title: "Age of Empires IV: Anniversary Edition", URL: "https://store.steampowered.com/app/1466860/Age_of_Empires_IV_Anniversary_Edition/", Price: "$39.99", MaxPlayers: "8", MediaRef: "O79KBkO5GtA"},
	{ID: 4, Title: "Among Us", URL: "https://store.steampowered.com/app/945360/Among_Us/", Price: "$4.99", MaxPlayers: "15", MediaRef: "NSJ4cESNQfE"},
	{ID: 5, Title: "ARK: Survival Ascended", URL: "https://store.steampowered.com/app/2399830/ARK_Survival_Ascended/", Price: "$44.99", MaxPlayers: "70", MediaRef: "5fJI6XP0J2M"},
	{ID: 6, Title: "BallisticNG", URL: "https://store.steampowered.com/app/473770/BallisticNG/", Price: "$14.99", MaxPlayers: "16", MediaRef: "lz3f0J7tXK4"},
	{ID: 7, Title: "Ball Race Party", URL: "https://store.steampowered.com/app/3202400/Ball_Race_Party/", Price: "$3.99", MaxPlayers: "12", MediaRef: "mQY3Z9v7Lq4"},
	{ID: 8, Title: "Besiege", URL: "https://store.steampowered.com/app/346010/Besiege/", Price: "$3.74", MaxPlayers: "8", MediaRef: "g7Vh2h6xqa0"},
	{ID: 9, Title: "Blackwake", URL: "https://store.steampowered.com/app/420290/Blackwake/", Price: "FREE", MaxPlayers: "13 Player Crew", MediaRef: "JNq8wFnMA7w"},
	{ID: 10, Title: "Circuit Superstars", URL: "https://store.steampowered.com/app/1097130/Circuit_Superstars/", Price: "$19.99", MaxPlayers: "12", MediaRef: "VjZ7tU4hU9s"},
	{ID: 11, Title: "Command & Conquer Remastered", URL: "https://store.steampowered.com/app/1213210/Command__Conquer_Remastered_Collection/", Price: "$4.99", MaxPlayers: "4 / 8", MediaRef: "OarRYpma1h4"},
	{ID: 12, Title: "Counter-Strike", URL: "https://store.steampowered.com/app/10/CounterStrike/", Price: "$9.99", MaxPlayers: "10 / 32", MediaRef: "edYCtaNSc3g"},
	{ID: 13, Title: "Counter-Strike 2", URL: "https://store.steampowered.com/app/730/CounterStrike_2/", Price: "FREE", MaxPlayers: "10 / 64", MediaRef: "RzZ2bWZ_8Ho"},
	{ID: 14, Title: "DayZ", URL: "https://store.steampowered.com/app/221100/DayZ/", Price: "$29.99", MaxPlayers: "60", MediaRef: "XIWyk2mz5ug"},
	{ID: 15, Title: "Due Process", URL: "https://store.steampowered.com/app/753650/Due_Process/", Price: "$0.99", MaxPlayers: "10", MediaRef: "XlZR0GQnR1k"},
	{ID: 16, Title: "EmptyEpsilon", URL: "https://store.steampowered.com/app/1907040/EmptyEpsilon/", Price: "FREE", MaxPlayers: "32", MediaRef: "tMnXqY4ZQo8"},
	{ID: 17, Title: "Fistful of Frags", URL: "https://store.steampowered.com/app/265630/Fistful_of_Frags/", Price: "FREE", MaxPlayers: "20", MediaRef: "zQY3qKh6vRg"},
	{ID: 18, Title: "GoldenEye: Source", URL: "https://www.moddb.com/mods/goldeneye-source", Price: "FREE", MaxPlayers: "16", MediaRef: "3f0zVRcMZJc"},
	{ID: 19, Title: "Guild Wars 2", URL: "https://store.steampowered.com/app/1284210/Guild_Wars_2/", Price: "FREE", MaxPlayers: "N/A", MediaRef: "oR9XaU9M5t8"},
	{ID: 20, Title: "Halo: The Master Chief Collection", URL: "https://store.steampowered.com/app/976730/Halo_The_Master_Chief_Collection/", Price: "$39.99", MaxPlayers: "16", MediaRef: "8r8CNWfUQvo"},
	{ID: 21, Title: "Heroes of the Storm", URL: "https://heroesofthestorm.blizzard.com/en-us/", Price: "FREE", MaxPlayers: "10", MediaRef: "0ecv0bT9DEo"},
	{ID: 22, Title: "HYPERCHARGE: Unboxed", URL: "https://store.steampowered.com/app/523660/HYPERCHARGE_Unboxed/", Price: "$24.99", MaxPlayers: "8", MediaRef: "eLdi9aINqXk"},
	{ID: 23, Title: "Marvel Rivals", URL: "https://store.steampowered.com/app/2767030/Marvel_Rivals/", Price: "FREE", MaxPlayers: "12", MediaRef: "jSP4KPf2D4M"},
	{ID: 24, Title: "NEOTOKYO", URL: "https://store.steampowered.com/app/244630/NEOTOKYO/", Price: "FREE", MaxPlayers: "32", MediaRef: "4c7aZ6lzw7o"},
	{ID: 25, Title: "Nuclear Nightmare", URL: "https://store.steampowered.com/app/2909110/Nuclear_Nightmare/", Price: "$6.99", MaxPlayers: "8", MediaRef: "vXqWZ8QkUQk"},
	{ID: 26, Title: "Overwatch 2", URL: "https://store.steampowered.com/app/2357570/Overwatch_2/", Price: "FREE", MaxPlayers: "12", MediaRef: "GKXS_YA9s7E"},
	{ID: 27, Title: "Overload", URL: "https://store.steampowered.com/app/448850/Overload/", Price: "$29.99", MaxPlayers: "8", MediaRef: "3f0zVRcMZJc"},
	{ID: 28, Title: "PICO PARK 2", URL: "https://store.steampowered.com/app/2644470/PICO_PARK_2/", Price: "FREE", MaxPlayers: "8", MediaRef: "8QjDm0fFKy4"},
	{ID: 29, Title: "Pummel Party", URL: "https://store.steampowered.com/app/880940/Pummel_Party/", Price: "$14.99", MaxPlayers: "8", MediaRef: "9Kp8LbGJ8sQ"},
	{ID: 30, Title: "Renegade X", URL: "https://totemarts.games/games/renegade-x/", Price: "FREE", MaxPlayers: "64", MediaRef: "h2X9F8Y6f7E"},
	{ID: 31, Title: "Retrocycles", URL: "https://store.steampowered.com/app/1306180/Retrocycles/", Price: "FREE", MaxPlayers: "16", MediaRef: "5XgB5XgB5Xg"},
	{ID: 32, Title: "Rust", URL: "https://store.steampowered.com/app/252490/Rust/", Price: "$39.99", MaxPlayers: "1024", MediaRef: "MJV4fsUKfSk"},
	{ID: 33, Title: "Sea of Thieves", URL: "https://store.steampowered.com/app/1172620/Sea_of_Thieves_2025_Edition/", Price: "$39.99", MaxPlayers: "4 Player Crew", MediaRef: "r5JIBaETE8I"},
	{ID: 34, Title: "Serious Sam HD", URL: "https://store.steampowered.com/app/41000/Serious_Sam_HD_The_First_Encounter/", Price: "$1.49", MaxPlayers: "16", MediaRef: "3f0zVRcMZJc"},
	{ID: 35, Title: "Soldat 2", URL: "https://store.steampowered.com/app/474220/Soldat_2/", Price: "$7.99", MaxPlayers: "32", MediaRef: "5XgB5XgB5Xg"},
	{ID: 36, Title: "StarCraft", URL: "https://starcraft.blizzard.com/en-us/", Price: "FREE", MaxPlayers: "8 / 12", MediaRef: "VTLcAKAzSbM"},
	{ID: 37, Title: "StarCraft 2", URL: "https://starcraft2.blizzard.com/en-us/", Price: "FREE", MaxPlayers: "8 / 12", MediaRef: "9SfCDk5PStM"},
	{ID: 38, Title: "Stumble Guys", URL: "https://store.steampowered.com/app/1677740/Stumble_Guys/", Price: "FREE", MaxPlayers: "32", MediaRef: "DGBGgH5jfXc"},
	{ID: 39, Title: "Sven Co-op", URL: "https://store.steampowered.com/app/225840/Sven_Coop/", Price: "FREE", MaxPlayers: "32", MediaRef: "3f0zVRcMZJc"},
	{ID: 40, Title: "Texas Chain Saw Massacre", URL: "https://store.steampowered.com/app/1433140/The_Texas_Chain_Saw_Massacre/", Price: "$19.99", MaxPlayers: "7", MediaRef: "yXfDwgW4H4E"},
	{ID: 41, Title: "Torchlight II", URL: "https://store.steampowered.com/app/200710/Torchlight_II/", Price: "$19.99", MaxPlayers: "8", MediaRef: "8ZbFHCW6e2M"},
	{ID: 42, Title: "TRIBES 3: Rivals", URL: "https://store.steampowered.com/app/2687970/TRIBES_3_Rivals/", Price: "$19.99", MaxPlayers: "32", MediaRef: "h2X9F8Y6f7E"},
	{ID: 43, Title: "V Rising", URL: "https://store.steampowered.com/app/1604030/V_Rising/", Price: "$34.99", MaxPlayers: "60", MediaRef: "aGBZL3pQ9vI"},
	{ID: 44, Title: "Viscera Cleanup Detail", URL: "https://store.steampowered.com/app/246900/Viscera_Cleanup_Detail/", Price: "$12.99 or $34.99 for 4-Pack", MaxPlayers: "32", MediaRef: "N9pX3yPdd0c"},
	{ID: 45, Title: "Warborne Above Ashes", URL: "https://store.steampowered.com/app/3142050/Warborne_Above_Ashes/", Price: "FREE", MaxPlayers: "200", MediaRef: "5XgB5XgB5Xg"},
	{ID: 46, Title: "Warcraft III: Reforged", URL: "https://warcraft3.blizzard.com/en-us/", Price: "$29.99", MaxPlayers: "24", MediaRef: "1m7L9uLzR5g"},
	{ID: 47, Title: "X-MODE", URL: "https://store.steampowered.com/app/2265640/XMODE/", Price: "FREE", MaxPlayers: "N/A", MediaRef: "5XgB5XgB5Xg"},}

// BuiltinCatalog 返回内置游戏列表的一份拷贝，供维护工具使用。
func BuiltinCatalog() []GameDescriptor {
	out := make([]GameDescriptor, len(builtinCatalog))
	copy(out, builtinCatalog)
	return out
}
