package catalog

import "gxportfolio/internal/domain"

// gxbotCommands is the GXBot command list shown on the portfolio page
var gxbotCommands = []domain.CommandRecord{
	// General
	{Name: "vote", Category: domain.CategoryGeneral, Description: "Vote for GXBot on Top.gg"},
	{Name: "server", Category: domain.CategoryGeneral, Description: "Display server statistics and features"},
	{Name: "verify", Category: domain.CategoryGeneral, Description: "Submit account verification request"},
	{Name: "invites_bot", Category: domain.CategoryGeneral, Description: "Bot information and invite links"},
	{Name: "gxhup", Category: domain.CategoryGeneral, Description: "Global GXHub network across servers"},
	{Name: "owner_bot", Category: domain.CategoryGeneral, Description: "Bot owner information"},
	{Name: "lnformation", Category: domain.CategoryGeneral, Description: "Display user information inside the server"},

	// Moderation
	{Name: "warn", Category: domain.CategoryModeration, Description: "Warn a member"},
	{Name: "warnings", Category: domain.CategoryModeration, Description: "View member warnings"},
	{Name: "remove_warnings", Category: domain.CategoryModeration, Description: "Remove a warning"},
	{Name: "ban", Category: domain.CategoryModeration, Description: "Ban a member"},
	{Name: "kick", Category: domain.CategoryModeration, Description: "Kick a member"},
	{Name: "mute", Category: domain.CategoryModeration, Description: "Mute a member"},
	{Name: "timeout", Category: domain.CategoryModeration, Description: "Timeout a member"},
	{Name: "role", Category: domain.CategoryModeration, Description: "Add or remove a role"},
	{Name: "give_role", Category: domain.CategoryModeration, Description: "Give a role to all members"},
	{Name: "remove_role", Category: domain.CategoryModeration, Description: "Remove a role from all members"},

	// Channel Control
	{Name: "lock", Category: domain.CategoryChannelControl, Description: "Lock the current channel"},
	{Name: "unlock", Category: domain.CategoryChannelControl, Description: "Unlock the channel"},
	{Name: "clear", Category: domain.CategoryChannelControl, Description: "Clear messages"},
	{Name: "remove_one", Category: domain.CategoryChannelControl, Description: "Remove a single channel or role"},
	{Name: "block_room", Category: domain.CategoryChannelControl, Description: "Block bot commands in a room"},
	{Name: "Hide_rooms", Category: domain.CategoryChannelControl, Description: "Hide all channels"},
	{Name: "Show_rooms", Category: domain.CategoryChannelControl, Description: "Show channels"},
	{Name: "allow_links", Category: domain.CategoryChannelControl, Description: "Allow links"},
	{Name: "block_links", Category: domain.CategoryChannelControl, Description: "Block links"},

	// Automation
	{Name: "log", Category: domain.CategoryAutomation, Description: "Enable logging system"},
	{Name: "stop_log", Category: domain.CategoryAutomation, Description: "Disable logs"},
	{Name: "log_deleted", Category: domain.CategoryAutomation, Description: "Log deleted messages"},
	{Name: "invite_logs", Category: domain.CategoryAutomation, Description: "Track invites"},
	{Name: "registration_panel", Category: domain.CategoryAutomation, Description: "Admin registration panel"},
	{Name: "general_reply", Category: domain.CategoryAutomation, Description: "Set automatic replies in a channel"},
	{Name: "remove_invites", Category: domain.CategoryAutomation, Description: "Reset invites"},
	{Name: "setup_welcome", Category: domain.CategoryAutomation, Description: "Welcome system setup"},
	{Name: "setup_suggestions", Category: domain.CategoryAutomation, Description: "Suggestions channel setup"},
	{Name: "suggest", Category: domain.CategoryAutomation, Description: "Submit a suggestion"},
	{Name: "aliases", Category: domain.CategoryAutomation, Description: "Create command aliases"},
	{Name: "show_aliases", Category: domain.CategoryAutomation, Description: "Show aliases"},
	{Name: "remove_aliases", Category: domain.CategoryAutomation, Description: "Remove aliases"},
	{Name: "auto_reply", Category: domain.CategoryAutomation, Description: "Add auto reply"},
	{Name: "list_replys", Category: domain.CategoryAutomation, Description: "List active auto replies"},
	{Name: "auto_reply_remove", Category: domain.CategoryAutomation, Description: "Remove auto reply"},
	{Name: "setup_ratings", Category: domain.CategoryAutomation, Description: "Enable or disable rating system"},
	{Name: "setup_teckit", Category: domain.CategoryAutomation, Description: "Setup ticket system"},
	{Name: "ticket_points", Category: domain.CategoryAutomation, Description: "Display ticket points"},

	// Economy
	{Name: "bank", Category: domain.CategoryEconomy, Description: "View bank card"},
	{Name: "profile", Category: domain.CategoryEconomy, Description: "View user profile"},
	{Name: "top_kentos", Category: domain.CategoryEconomy, Description: "Top users by currency"},
	{Name: "create_coupon", Category: domain.CategoryEconomy, Description: "Create a coupon"},
	{Name: "use_coupon", Category: domain.CategoryEconomy, Description: "Use a coupon"},
	{Name: "trust", Category: domain.CategoryEconomy, Description: "Give trust every 24 hours"},
	{Name: "background_view", Category: domain.CategoryEconomy, Description: "Browse backgrounds"},
	{Name: "view_my_backgrounds", Category: domain.CategoryEconomy, Description: "View owned backgrounds"},
	{Name: "top_servers", Category: domain.CategoryEconomy, Description: "Top servers leaderboard"},
	{Name: "top_tasks", Category: domain.CategoryEconomy, Description: "Top tasks leaderboard"},

	// Entertainment
	{Name: "gx_wheel", Category: domain.CategoryEntertainment, Description: "GX luck wheel"},
	{Name: "gx_wheel_channel", Category: domain.CategoryEntertainment, Description: "Set wheel channels"},
	{Name: "opinion", Category: domain.CategoryEntertainment, Description: "Random judgment or opinion"},
	{Name: "avatar_member", Category: domain.CategoryEntertainment, Description: "Display member avatar"},

	// Utilities
	{Name: "adhkar", Category: domain.CategoryUtilities, Description: "Play Islamic adhkar"},
	{Name: "stop_adhkar", Category: domain.CategoryUtilities, Description: "Stop adhkar"},
	{Name: "used_for", Category: domain.CategoryUtilities, Description: "Display bot usage statistics"},
	{Name: "embed", Category: domain.CategoryUtilities, Description: "Send embed messages"},
	{Name: "room_emojis", Category: domain.CategoryUtilities, Description: "Convert images to emojis in a channel"},
	{Name: "stop_room_emoji", Category: domain.CategoryUtilities, Description: "Stop emoji conversion"},
	{Name: "auto_reply_emoji", Category: domain.CategoryUtilities, Description: "Auto emoji reactions"},
	{Name: "stopped_reply_emoji", Category: domain.CategoryUtilities, Description: "Disable emoji replies"},
	{Name: "tax", Category: domain.CategoryUtilities, Description: "Set tax calculation channel"},
}

// Default returns the GXBot command catalog
func Default() *Catalog {
	return New(gxbotCommands)
}
