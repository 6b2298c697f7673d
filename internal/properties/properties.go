package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func LandsatClientID() string {
	return os.Getenv("LANDSAT_CLIENT_ID")
}

func LandsatClientSecret() string {
	return os.Getenv("LANDSAT_CLIENT_SECRET")
}

func LandsatTokenURL() string {
	return os.Getenv("LANDSAT_TOKEN_URL")
}

func LandsatProcessURL() string {
	if url := os.Getenv("LANDSAT_PROCESS_URL"); url != "" {
		return url
	}
	return "https://sh.dataspace.copernicus.eu/api/v1/process"
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}

func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}
