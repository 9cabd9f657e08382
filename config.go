package main

const ENV_TWITTER_BEARER_TOKEN = "TWITTER_BEARER_TOKEN"
const ENV_TWITTER_API_BASE_URL = "twitter_api_base_url"
const ENV_PROXY_DSN = "proxy_dsn"
const ENV_TELEGRAM_API_KEY = "telegram_api_key"
const ENV_TELEGRAM_ADMIN_CHAT_ID = "tg_admin_chat_id"
const ENV_LOGGING_DATABASE_PATH = "logging_database_path"
const ENV_LOG_LEVEL = "log_level"

const DEFAULT_CONFIG_FILE = ".env"
const DEFAULT_LOGGING_DATABASE_PATH = "requests.db"
const DEFAULT_CLEANUP_DAYS = 30
const DEFAULT_RECENT_REQUESTS_LIMIT = 20
const DEFAULT_STATS_DAYS = 7
