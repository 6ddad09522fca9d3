// Package i18n resolves user-supplied language names to supported locales and
// holds the per-locale strings used when prompting for commit messages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no language is configured.
const DefaultLocale = "en"

// Translation holds the locale-specific examples fed to the model so that
// generated messages are written in the configured language.
type Translation struct {
	LocalLanguage     string // language name as written in the language itself
	CommitFix         string
	CommitFeat        string
	CommitDescription string
}

// Locales lists the supported locale ids in matching priority order.
var Locales = []string{
	"en", "de", "fr", "es_ES", "it", "pt_br", "nl", "ru", "ja", "ko", "zh_CN", "zh_TW",
}

var translations = map[string]Translation{
	"en": {
		LocalLanguage:     "english",
		CommitFix:         "fix(server.ts): change port variable case from lowercase port to uppercase PORT",
		CommitFeat:        "feat(server.ts): add support for process.env.PORT environment variable",
		CommitDescription: "The port variable is now named PORT, which improves consistency with the naming conventions as PORT is a constant. Support for an environment variable allows the application to be more flexible as it can now run on any available port specified via the process.env.PORT environment variable.",
	},
	"de": {
		LocalLanguage:     "deutsch",
		CommitFix:         "fix(server.ts): Ändere die Groß-/Kleinschreibung der Port-Variable von klein port zu groß PORT",
		CommitFeat:        "feat(server.ts): Füge Unterstützung für die Umgebungsvariable process.env.PORT hinzu",
		CommitDescription: "Die Port-Variable heißt jetzt PORT, was die Konsistenz mit den Namenskonventionen verbessert, da PORT eine Konstante ist. Die Unterstützung einer Umgebungsvariable macht die Anwendung flexibler, da sie jetzt auf jedem über process.env.PORT angegebenen Port laufen kann.",
	},
	"fr": {
		LocalLanguage:     "français",
		CommitFix:         "fix(server.ts): changer la casse de la variable port de minuscule port à majuscule PORT",
		CommitFeat:        "feat(server.ts): ajouter la prise en charge de la variable d'environnement process.env.PORT",
		CommitDescription: "La variable port s'appelle désormais PORT, ce qui améliore la cohérence avec les conventions de nommage car PORT est une constante. La prise en charge d'une variable d'environnement rend l'application plus flexible, car elle peut désormais fonctionner sur n'importe quel port indiqué par process.env.PORT.",
	},
	"es_ES": {
		LocalLanguage:     "español",
		CommitFix:         "fix(server.ts): cambiar el nombre de la variable port de minúsculas a mayúsculas PORT",
		CommitFeat:        "feat(server.ts): añadir soporte para la variable de entorno process.env.PORT",
		CommitDescription: "La variable port ahora se llama PORT, lo que mejora la coherencia con las convenciones de nomenclatura, ya que PORT es una constante. El soporte de una variable de entorno hace que la aplicación sea más flexible, ya que ahora puede ejecutarse en cualquier puerto indicado mediante process.env.PORT.",
	},
	"it": {
		LocalLanguage:     "italiano",
		CommitFix:         "fix(server.ts): cambia il nome della variabile port da minuscolo a maiuscolo PORT",
		CommitFeat:        "feat(server.ts): aggiungi il supporto per la variabile d'ambiente process.env.PORT",
		CommitDescription: "La variabile port ora si chiama PORT, migliorando la coerenza con le convenzioni di denominazione poiché PORT è una costante. Il supporto di una variabile d'ambiente rende l'applicazione più flessibile, poiché ora può essere eseguita su qualsiasi porta indicata da process.env.PORT.",
	},
	"pt_br": {
		LocalLanguage:     "português",
		CommitFix:         "fix(server.ts): altera o nome da variável port de minúsculas para maiúsculas PORT",
		CommitFeat:        "feat(server.ts): adiciona suporte à variável de ambiente process.env.PORT",
		CommitDescription: "A variável port agora se chama PORT, o que melhora a consistência com as convenções de nomenclatura, já que PORT é uma constante. O suporte a uma variável de ambiente torna a aplicação mais flexível, pois agora ela pode rodar em qualquer porta definida por process.env.PORT.",
	},
	"nl": {
		LocalLanguage:     "nederlands",
		CommitFix:         "fix(server.ts): wijzig de naam van de variabele port van kleine letters naar hoofdletters PORT",
		CommitFeat:        "feat(server.ts): voeg ondersteuning toe voor de omgevingsvariabele process.env.PORT",
		CommitDescription: "De variabele port heet nu PORT, wat beter aansluit bij de naamgevingsconventies omdat PORT een constante is. Ondersteuning voor een omgevingsvariabele maakt de applicatie flexibeler, omdat deze nu kan draaien op elke poort die via process.env.PORT wordt opgegeven.",
	},
	"ru": {
		LocalLanguage:     "русский",
		CommitFix:         "fix(server.ts): изменить регистр переменной port с нижнего на верхний PORT",
		CommitFeat:        "feat(server.ts): добавить поддержку переменной окружения process.env.PORT",
		CommitDescription: "Переменная port теперь называется PORT, что лучше соответствует соглашениям об именовании, так как PORT является константой. Поддержка переменной окружения делает приложение гибче: теперь оно может работать на любом порту, указанном в process.env.PORT.",
	},
	"ja": {
		LocalLanguage:     "日本語",
		CommitFix:         "fix(server.ts): ポート変数を小文字のportから大文字のPORTに変更",
		CommitFeat:        "feat(server.ts): 環境変数process.env.PORTのサポートを追加",
		CommitDescription: "PORTは定数であるため、ポート変数の名前をPORTに変更し命名規則との一貫性を高めました。環境変数をサポートすることで、process.env.PORTで指定された任意のポートでアプリケーションを実行できるようになり、柔軟性が向上しました。",
	},
	"ko": {
		LocalLanguage:     "한국어",
		CommitFix:         "fix(server.ts): 포트 변수를 소문자 port에서 대문자 PORT로 변경",
		CommitFeat:        "feat(server.ts): process.env.PORT 환경 변수 지원 추가",
		CommitDescription: "PORT는 상수이므로 포트 변수 이름을 PORT로 바꿔 명명 규칙과의 일관성을 높였습니다. 환경 변수를 지원하므로 이제 process.env.PORT로 지정한 어떤 포트에서도 애플리케이션을 실행할 수 있어 유연성이 향상되었습니다.",
	},
	"zh_CN": {
		LocalLanguage:     "简体中文",
		CommitFix:         "fix(server.ts)：将端口变量从小写 port 改为大写 PORT",
		CommitFeat:        "feat(server.ts)：添加对 process.env.PORT 环境变量的支持",
		CommitDescription: "端口变量现在命名为 PORT，这提高了命名约定的一致性，因为 PORT 是一个常量。通过支持环境变量，应用程序现在更加灵活，可以在 process.env.PORT 指定的任何可用端口上运行。",
	},
	"zh_TW": {
		LocalLanguage:     "繁體中文",
		CommitFix:         "fix(server.ts)：將端口變數從小寫 port 改為大寫 PORT",
		CommitFeat:        "feat(server.ts)：新增對 process.env.PORT 環境變數的支援",
		CommitDescription: "端口變數現在命名為 PORT，這提高了命名慣例的一致性，因為 PORT 是一個常數。透過支援環境變數，應用程式現在更具彈性，可以在 process.env.PORT 指定的任何可用端口上執行。",
	},
}

var (
	localeTags    []language.Tag
	localeMatcher language.Matcher
)

func init() {
	localeTags = make([]language.Tag, len(Locales))
	for i, id := range Locales {
		localeTags[i] = language.Make(strings.ReplaceAll(id, "_", "-"))
	}
	localeMatcher = language.NewMatcher(localeTags)
}

// Resolve maps a user-supplied language to a supported locale id.
//
// Accepted inputs, in order: a locale id ("en", "zh_CN"), the language's own
// name ("deutsch", "日本語", case-insensitive), or a BCP 47 tag that matches a
// supported locale with high confidence ("en-US", "pt-BR", "de-AT").
func Resolve(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	if _, ok := translations[value]; ok {
		return value, true
	}
	for _, id := range Locales {
		if strings.EqualFold(translations[id].LocalLanguage, value) {
			return id, true
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", false
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	// The matcher falls back to English for languages it has no locale
	// for; only a locale of the same language counts.
	want, _ := tag.Base()
	got, _ := localeTags[idx].Base()
	if want != got {
		return "", false
	}
	return Locales[idx], true
}

// Lookup returns the translation for a locale id, falling back to English.
func Lookup(locale string) Translation {
	if t, ok := translations[locale]; ok {
		return t
	}
	return translations[DefaultLocale]
}
