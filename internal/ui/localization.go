package ui

import "fyne.io/fyne/v2/lang"

// Text keys
const (
	KeyAppTitle          = "app_title"
	KeyAddIcon           = "add_icon"
	KeyRemoveIcon        = "remove_icon"
	KeyShowInManager     = "show_in_manager"
	KeySelectIcon        = "select_icon"
	KeySaveNow           = "save_now"
	KeySettings          = "settings"
	KeyQuit              = "quit"
	KeyLanguage          = "language"
	KeyScreenWidth       = "screen_width"
	KeyScreenHeight      = "screen_height"
	KeyWatchConfig       = "watch_config"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyUnsupportedImage  = "unsupported_image"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorSavingConfig = "error_saving_config"
)

// fallbackLanguage is used for unknown codes and missing keys
const fallbackLanguage = "en"

type catalog map[string]string

var catalogs = map[string]catalog{
	"en": {
		KeyAppTitle:          "Dockstar",
		KeyAddIcon:           "Add Icon",
		KeyRemoveIcon:        "Remove Icon",
		KeyShowInManager:     "Show in File Manager",
		KeySelectIcon:        "Select Icon",
		KeySaveNow:           "Save Now",
		KeySettings:          "Settings",
		KeyQuit:              "Quit",
		KeyLanguage:          "Language",
		KeyScreenWidth:       "Screen Width",
		KeyScreenHeight:      "Screen Height",
		KeyWatchConfig:       "Reload config when edited externally",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved. Screen size applies to the next default dock.",
		KeyUnsupportedImage:  "Unsupported image type",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorSavingConfig: "Error saving dock configuration",
	},
	"ru": {
		KeyAppTitle:          "Dockstar",
		KeyAddIcon:           "Добавить значок",
		KeyRemoveIcon:        "Удалить значок",
		KeyShowInManager:     "Показать в файловом менеджере",
		KeySelectIcon:        "Выберите значок",
		KeySaveNow:           "Сохранить сейчас",
		KeySettings:          "Настройки",
		KeyQuit:              "Выход",
		KeyLanguage:          "Язык",
		KeyScreenWidth:       "Ширина экрана",
		KeyScreenHeight:      "Высота экрана",
		KeyWatchConfig:       "Перечитывать конфигурацию при изменении",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены. Размер экрана применится к новой панели по умолчанию.",
		KeyUnsupportedImage:  "Неподдерживаемый тип изображения",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorSavingConfig: "Ошибка сохранения конфигурации",
	},
	"pt": {
		KeyAppTitle:          "Dockstar",
		KeyAddIcon:           "Adicionar Ícone",
		KeyRemoveIcon:        "Remover Ícone",
		KeyShowInManager:     "Mostrar no Gerenciador de Arquivos",
		KeySelectIcon:        "Selecionar Ícone",
		KeySaveNow:           "Salvar Agora",
		KeySettings:          "Configurações",
		KeyQuit:              "Sair",
		KeyLanguage:          "Idioma",
		KeyScreenWidth:       "Largura da Tela",
		KeyScreenHeight:      "Altura da Tela",
		KeyWatchConfig:       "Recarregar configuração quando editada externamente",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas. O tamanho da tela vale para o próximo dock padrão.",
		KeyUnsupportedImage:  "Tipo de imagem não suportado",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorSavingConfig: "Erro ao salvar a configuração do dock",
	},
}

// languageNames are shown in the settings language picker
var languageNames = map[string]string{
	"en": "English",
	"ru": "Русский",
	"pt": "Português",
}

// Localization picks UI strings for one language
type Localization struct {
	language string
}

func NewLocalization() *Localization {
	return &Localization{language: fallbackLanguage}
}

// SetLanguage switches to code. "system" follows the OS locale. Codes
// without a catalog leave the language unchanged and return false.
func (l *Localization) SetLanguage(code string) bool {
	if code == "system" {
		code = systemLanguage()
	}
	if _, ok := catalogs[code]; !ok {
		return false
	}
	l.language = code
	return true
}

// Language returns the active language code
func (l *Localization) Language() string {
	return l.language
}

// Text returns the string for key, falling back to English and then to the
// key itself.
func (l *Localization) Text(key string) string {
	if text, ok := catalogs[l.language][key]; ok {
		return text
	}
	if text, ok := catalogs[fallbackLanguage][key]; ok {
		return text
	}
	return key
}

// Languages returns the selectable language codes with display names
func (l *Localization) Languages() map[string]string {
	out := make(map[string]string, len(languageNames))
	for code, name := range languageNames {
		out[code] = name
	}
	return out
}

func systemLanguage() string {
	code := lang.SystemLocale().LanguageString()
	if _, ok := catalogs[code]; ok {
		return code
	}
	return fallbackLanguage
}
