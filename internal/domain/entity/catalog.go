package entity

import "github.com/jhoicas/giftcert-api/internal/domain/search"

// Tipos filtrables por el motor de búsqueda.
const (
	GiftCertificateType search.EntityType = "gift_certificate"
	TagType             search.EntityType = "tag"
	OrderType           search.EntityType = "order"
	UserType            search.EntityType = "user"
)

// Rutas de join; el adaptador de almacenamiento sabe cómo recorrer cada una.
const (
	PathTags         = "tags"
	PathCertificates = "certificates"
	PathOrders       = "orders"
	PathUser         = "user"
)

// GiftCertificateCatalog campos filtrables de certificados (prefijo "gc.").
var GiftCertificateCatalog = search.StaticCatalog{
	Type:        GiftCertificateType,
	FieldPrefix: "gc.",
	FieldList: []search.FieldDescriptor{
		{LogicalName: "id", Aliases: []string{"gcId", "certificateId"}, StorageColumn: "id"},
		{LogicalName: "name", Aliases: []string{"gcName", "giftCertificateName"}, StorageColumn: "name"},
		{LogicalName: "description", Aliases: []string{"description", "gcDescription"}, StorageColumn: "description"},
		{LogicalName: "price", Aliases: []string{"price", "gcPrice"}, StorageColumn: "price"},
		{LogicalName: "duration", Aliases: []string{"duration", "gcDuration"}, StorageColumn: "duration"},
		{LogicalName: "create", Aliases: []string{"create_date", "create", "gcCreate", "giftCertificateCreate"}, StorageColumn: "create_date"},
		{LogicalName: "update", Aliases: []string{"last_update_date", "update", "gcUpdate", "giftCertificateUpdate"}, StorageColumn: "last_update_date"},
	},
	JoinList: []search.JoinRef{{Related: TagType, Path: PathTags}},
}

// TagCatalog campos filtrables de etiquetas (prefijo "t.").
var TagCatalog = search.StaticCatalog{
	Type:        TagType,
	FieldPrefix: "t.",
	FieldList: []search.FieldDescriptor{
		{LogicalName: "id", Aliases: []string{"tId", "tagId"}, StorageColumn: "id"},
		{LogicalName: "name", Aliases: []string{"tName", "tagName"}, StorageColumn: "name"},
	},
	JoinList: []search.JoinRef{{Related: GiftCertificateType, Path: PathCertificates}},
}

// OrderCatalog campos filtrables de órdenes (prefijo "o.").
var OrderCatalog = search.StaticCatalog{
	Type:        OrderType,
	FieldPrefix: "o.",
	FieldList: []search.FieldDescriptor{
		{LogicalName: "id", Aliases: []string{"oId", "orderId"}, StorageColumn: "id"},
		{LogicalName: "cost", Aliases: []string{"cost", "oCost", "orderCost"}, StorageColumn: "cost"},
		{LogicalName: "purchaseDate", Aliases: []string{"purchase_date", "purchaseDate", "oPurchaseDate", "orderPurchaseDate"}, StorageColumn: "purchase_date"},
	},
	JoinList: []search.JoinRef{
		{Related: GiftCertificateType, Path: PathCertificates},
		{Related: UserType, Path: PathUser},
	},
}

// UserCatalog campos filtrables de usuarios (prefijo "u.").
var UserCatalog = search.StaticCatalog{
	Type:        UserType,
	FieldPrefix: "u.",
	FieldList: []search.FieldDescriptor{
		{LogicalName: "id", Aliases: []string{"uId", "userId"}, StorageColumn: "id"},
		{LogicalName: "username", Aliases: []string{"username", "uUsername"}, StorageColumn: "username"},
	},
	JoinList: []search.JoinRef{{Related: OrderType, Path: PathOrders}},
}

// Catalogs todos los catálogos, listos para search.NewRegistry.
func Catalogs() []search.FieldCatalog {
	return []search.FieldCatalog{GiftCertificateCatalog, TagCatalog, OrderCatalog, UserCatalog}
}

// Orden por defecto de cada búsqueda.
var (
	GiftCertificateDefaults = search.DefaultsFor("gc.id")
	TagDefaults             = search.DefaultsFor("t.id")
	OrderDefaults           = search.DefaultsFor("o.id")
	UserDefaults            = search.DefaultsFor("u.id")
)
