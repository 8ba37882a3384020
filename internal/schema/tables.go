package schema

// Menu feature
var (
	Offers = Define("offers",
		NewField("title", ShortText, Mandatory),
		NewField("subtitle", ShortText),
		NewField("image", URL),
	)

	Menus = Define("menus",
		NewField("name", ShortText, Unique, Mandatory),
	)

	Categories = Define("categories",
		NewField("name", ShortText, Unique, Mandatory),
		NewRelation("menu", "menus", ManyToOne),
	)

	Products = Define("products",
		NewField("name", ShortText, Unique, Mandatory),
		NewRelation("price", "pricing", ManyToOne),
		NewField("discount", Integer),
		NewField("calories", Integer),
		NewField("description", LongText),
		NewField("image", URL),
		NewRelation("category", "categories", ManyToOne),
	)

	Pricing = Define("pricing",
		NewField("price", Price),
	)

	ProductTags = Define("product_tags",
		NewField("name", ShortText, Unique, Mandatory),
	)

	ProductOptions = Define("product_options",
		NewField("name", ShortText, Unique, Mandatory),
		NewRelation("price", "pricing", ManyToOne),
	)

	ProductTagLinks = Define("product_tag_links",
		NewRelation("product", "products", ManyToOne),
		NewRelation("tag", "product_tags", ManyToOne),
	)

	ProductOptionLinks = Define("product_option_links",
		NewRelation("product", "products", ManyToOne),
		NewRelation("option", "product_options", ManyToOne),
	)
)

// Orders feature
var (
	Orders = Define("orders")

	OrderItemOptions = Define("order_item_options",
		NewRelation("price", "pricing", ManyToOne),
		NewRelation("option", "product_options", ManyToOne),
	)

	OrderItems = Define("order_items",
		NewRelation("price", "pricing", ManyToOne),
		NewRelation("product", "products", ManyToOne),
		NewField("quantity", Integer),
	)

	OrderItemToOrderOptionLinks = Define("order_item_to_order_option_links",
		NewRelation("item", "order_items", ManyToOne),
		NewRelation("option", "product_options", ManyToOne),
	)

	OrderDetails = Define("order_details",
		NewField("total", Price),
		NewField("subtotal", Price),
		NewField("tax", Percentage),
		NewRelation("order", "orders", OneToOne),
	)

	OrderToOrderItemLinks = Define("order_to_order_item_links",
		NewRelation("order", "orders", ManyToOne),
		NewRelation("item", "order_items", ManyToOne),
	)
)
